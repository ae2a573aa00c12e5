package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// AccessRepository performs the user-tenant capability check via the
// check_user_tenant_access stored function.
type AccessRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAccessRepository creates a new PostgreSQL access repository
func NewAccessRepository(db DatabaseIface, logger *slog.Logger) port.AccessDirectory {
	return &AccessRepository{
		db:     db,
		logger: logger.With("component", "access_repository"),
	}
}

// CheckTenantAccess asks the store whether userID may operate on
// tenantID and at what role. Single attempt, no fallback list: the
// caller folds any failure into a denial.
func (r *AccessRepository) CheckTenantAccess(ctx context.Context, userID, tenantID string) (*domain.TenantAccess, error) {
	query := `SELECT has_access, role FROM check_user_tenant_access($1, $2)`

	var (
		hasAccess bool
		role      *string
	)
	err := r.db.QueryRow(ctx, query, userID, tenantID).Scan(&hasAccess, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		r.logger.Error("tenant access check failed",
			"user_id", userID,
			"tenant_id", tenantID,
			"error", err)
		return nil, fmt.Errorf("failed to check tenant access: %w", err)
	}

	access := &domain.TenantAccess{HasAccess: hasAccess}
	if role != nil {
		access.Role = domain.UserRole(*role)
	}
	return access, nil
}
