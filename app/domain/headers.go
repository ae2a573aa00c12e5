package domain

// Trust headers injected on the forwarded request. Downstream handlers
// rely on these and must never see client-supplied values, so the
// gateway strips any inbound copies before resolution runs.
const (
	HeaderTenantID     = "x-tenant-id"
	HeaderTenantSchema = "x-tenant-schema"
	HeaderTenantName   = "x-tenant-name"
	HeaderUserID       = "x-user-id"
	HeaderUserRole     = "x-user-role"
)

// TrustHeaders lists every header the gateway owns.
var TrustHeaders = []string{
	HeaderTenantID,
	HeaderTenantSchema,
	HeaderTenantName,
	HeaderUserID,
	HeaderUserRole,
}
