package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// SeedRepository writes dev fixtures under the canonical schema. It
// never probes legacy layouts: seeding targets fresh databases only.
type SeedRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSeedRepository creates a new PostgreSQL seed repository
func NewSeedRepository(db DatabaseIface, logger *slog.Logger) port.DevSeeder {
	return &SeedRepository{
		db:     db,
		logger: logger.With("component", "seed_repository"),
	}
}

// SeedTenant upserts a tenant keyed by slug.
func (r *SeedRepository) SeedTenant(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		INSERT INTO tenants (id, slug, name, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE
		SET name = EXCLUDED.name, is_active = EXCLUDED.is_active`

	_, err := r.db.Exec(ctx, query, tenant.ID, tenant.Subdomain, tenant.Name, tenant.IsActive)
	if err != nil {
		r.logger.Error("failed to seed tenant", "slug", tenant.Subdomain, "error", err)
		return fmt.Errorf("failed to seed tenant: %w", err)
	}

	r.logger.Info("tenant seeded", "tenant_id", tenant.ID, "slug", tenant.Subdomain)
	return nil
}

// GrantAccess upserts a user-tenant access row.
func (r *SeedRepository) GrantAccess(ctx context.Context, userID, tenantID string, role domain.UserRole) error {
	query := `
		INSERT INTO user_tenants (user_id, tenant_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, tenant_id) DO UPDATE
		SET role = EXCLUDED.role`

	_, err := r.db.Exec(ctx, query, userID, tenantID, string(role))
	if err != nil {
		r.logger.Error("failed to grant tenant access",
			"user_id", userID,
			"tenant_id", tenantID,
			"error", err)
		return fmt.Errorf("failed to grant tenant access: %w", err)
	}

	r.logger.Info("tenant access granted", "user_id", userID, "tenant_id", tenantID, "role", role)
	return nil
}
