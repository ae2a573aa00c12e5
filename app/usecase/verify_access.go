package usecase

import (
	"context"
	"log/slog"
	"time"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// AccessVerifierUsecase decides whether a user may operate on a
// tenant. A single remote check, attempted once; any failure or empty
// result is a denial. Not cached: access is computed per request.
type AccessVerifierUsecase struct {
	directory port.AccessDirectory
	timeout   time.Duration
	logger    *slog.Logger
}

// NewAccessVerifier creates a new access verifier
func NewAccessVerifier(directory port.AccessDirectory, timeout time.Duration, logger *slog.Logger) port.AccessVerifier {
	return &AccessVerifierUsecase{
		directory: directory,
		timeout:   timeout,
		logger:    logger.With("component", "access_verifier"),
	}
}

// Check implements port.AccessVerifier.
func (u *AccessVerifierUsecase) Check(ctx context.Context, userID, tenantID string) *domain.TenantAccess {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	access, err := u.directory.CheckTenantAccess(ctx, userID, tenantID)
	if err != nil || access == nil {
		if err != nil {
			u.logger.Warn("tenant access check failed, denying",
				"user_id", userID,
				"tenant_id", tenantID,
				"error", err)
		}
		return &domain.TenantAccess{HasAccess: false}
	}
	return access
}
