package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// SQLSTATE codes that mean the probed layout simply does not exist in
// this deployment. They end the attempt, not the probe sequence.
const (
	pgUndefinedColumn   = "42703"
	pgUndefinedTable    = "42P01"
	pgUndefinedFunction = "42883"
)

// TenantRepository reads the tenant directory in PostgreSQL. It backs
// both lookup paths: the stored-procedure fast path and the direct
// table probes across legacy column layouts.
type TenantRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTenantRepository creates a new PostgreSQL tenant repository
func NewTenantRepository(db DatabaseIface, logger *slog.Logger) port.TenantDirectory {
	return &TenantRepository{
		db:     db,
		logger: logger.With("component", "tenant_repository"),
	}
}

// LookupBySubdomain invokes the canonical stored lookup function. A
// deployment that predates the function reports a miss, not an error,
// so the caller can fall through to the scheme probes.
func (r *TenantRepository) LookupBySubdomain(ctx context.Context, key string) (*domain.Tenant, error) {
	query := `SELECT id, name, subdomain, is_active FROM get_tenant_by_subdomain($1)`

	var (
		id, name, subdomain string
		isActive            bool
	)
	err := r.db.QueryRow(ctx, query, key).Scan(&id, &name, &subdomain, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedFunction {
			r.logger.Debug("tenant lookup function missing, relying on table probes")
			return nil, domain.ErrTenantNotFound
		}
		r.logger.Error("tenant lookup failed", "subdomain", key, "error", err)
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	return &domain.Tenant{
		ID:        id,
		Name:      name,
		Subdomain: subdomain,
		IsActive:  isActive,
	}, nil
}

// QueryByScheme reads the tenants table under one legacy column
// layout. Column names come from the compiled-in scheme list, never
// from request input. An undefined column or table means this layout
// is not the deployed one and counts as a miss.
func (r *TenantRepository) QueryByScheme(ctx context.Context, scheme domain.TenantScheme, key string) (*domain.Tenant, error) {
	query := fmt.Sprintf(
		`SELECT id, %s, %s, %s FROM tenants WHERE %s = $1 LIMIT 1`,
		scheme.SubdomainColumn, scheme.NameColumn, scheme.ActiveColumn, scheme.SubdomainColumn,
	)

	var (
		id              string
		subdomain, name *string
		isActive        *bool
	)
	err := r.db.QueryRow(ctx, query, key).Scan(&id, &subdomain, &name, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgUndefinedColumn || pgErr.Code == pgUndefinedTable) {
			r.logger.Debug("tenant scheme not present",
				"subdomain_column", scheme.SubdomainColumn,
				"active_column", scheme.ActiveColumn)
			return nil, domain.ErrTenantNotFound
		}
		r.logger.Error("tenant scheme query failed",
			"subdomain", key,
			"subdomain_column", scheme.SubdomainColumn,
			"error", err)
		return nil, fmt.Errorf("failed to query tenants table: %w", err)
	}

	return domain.NormalizeTenantRow(id, name, subdomain, isActive, key), nil
}
