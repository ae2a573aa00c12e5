package domain

// UserRole is the role a user holds within one tenant. Roles are
// tenant-scoped: access to tenant A implies nothing about tenant B.
type UserRole string

const (
	// RoleAdmin is treated downstream as a superuser that bypasses
	// restaurant-scoping checks.
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleUser  UserRole = "user"
)

// TenantAccess is the authorization edge between a user and a tenant,
// computed per-request by a single remote capability check.
type TenantAccess struct {
	HasAccess bool     `json:"has_access"`
	Role      UserRole `json:"role"`
}
