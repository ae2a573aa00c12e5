package port

import (
	"context"

	"tenant-gateway/app/domain"
)

//go:generate mockgen -source=tenant_port.go -destination=../mocks/mock_tenant_port.go -package=mocks

// TenantDirectory defines the tenant data store surface consumed by
// the resolver: one canonical server-side lookup plus ad-hoc reads
// against the legacy column layouts.
type TenantDirectory interface {
	// LookupBySubdomain invokes the stored lookup procedure. The fast
	// path; a miss or error falls through to the scheme probes.
	LookupBySubdomain(ctx context.Context, key string) (*domain.Tenant, error)

	// QueryByScheme reads the tenants table under one legacy column
	// layout. An undefined-column error must be returned as
	// domain.ErrTenantNotFound so the caller can continue probing.
	QueryByScheme(ctx context.Context, scheme domain.TenantScheme, key string) (*domain.Tenant, error)
}

// TenantResolver defines tenant resolution business logic.
type TenantResolver interface {
	// Resolve maps a subdomain key to an active tenant record.
	// Inactive and unknown tenants are indistinguishable to callers:
	// both yield domain.ErrTenantNotFound.
	Resolve(ctx context.Context, key string) (*domain.Tenant, error)
}
