package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// TenantResolverUsecase resolves a subdomain key to an active tenant.
// The stored lookup function is the fast path; when it errors or
// misses, the resolver probes the legacy column layouts in fixed
// order, first match wins. Every remote call is attempted exactly
// once under a bounded deadline: this runs on the hot path of every
// request and retry storms must be avoided.
type TenantResolverUsecase struct {
	directory port.TenantDirectory
	timeout   time.Duration
	logger    *slog.Logger
}

// NewTenantResolver creates a new tenant resolver
func NewTenantResolver(directory port.TenantDirectory, timeout time.Duration, logger *slog.Logger) port.TenantResolver {
	return &TenantResolverUsecase{
		directory: directory,
		timeout:   timeout,
		logger:    logger.With("component", "tenant_resolver"),
	}
}

// Resolve implements port.TenantResolver. Inactive tenants are
// reported as not found; callers never distinguish the two.
func (u *TenantResolverUsecase) Resolve(ctx context.Context, key string) (*domain.Tenant, error) {
	tenant, err := u.lookup(ctx, key)
	if err == nil && tenant != nil {
		if !tenant.IsActive {
			u.logger.Warn("tenant is inactive", "subdomain", key, "tenant_id", tenant.ID)
			return nil, domain.ErrTenantNotFound
		}
		return tenant, nil
	}
	if err != nil && !errors.Is(err, domain.ErrTenantNotFound) {
		// Fail fast into the probes, no retry on the fast path.
		u.logger.Warn("tenant lookup errored, probing table schemes", "subdomain", key, "error", err)
	}

	for _, scheme := range domain.TenantSchemes {
		tenant, err := u.queryScheme(ctx, scheme, key)
		if err != nil {
			if !errors.Is(err, domain.ErrTenantNotFound) {
				u.logger.Warn("tenant scheme probe errored",
					"subdomain", key,
					"subdomain_column", scheme.SubdomainColumn,
					"error", err)
			}
			continue
		}
		if tenant == nil {
			continue
		}
		if !tenant.IsActive {
			u.logger.Warn("tenant matched but inactive",
				"subdomain", key,
				"tenant_id", tenant.ID,
				"subdomain_column", scheme.SubdomainColumn)
			return nil, domain.ErrTenantNotFound
		}
		return tenant, nil
	}

	return nil, domain.ErrTenantNotFound
}

func (u *TenantResolverUsecase) lookup(ctx context.Context, key string) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.directory.LookupBySubdomain(ctx, key)
}

func (u *TenantResolverUsecase) queryScheme(ctx context.Context, scheme domain.TenantScheme, key string) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.directory.QueryByScheme(ctx, scheme, key)
}
