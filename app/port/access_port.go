package port

import (
	"context"

	"tenant-gateway/app/domain"
)

//go:generate mockgen -source=access_port.go -destination=../mocks/mock_access_port.go -package=mocks

// AccessDirectory performs the remote user-tenant capability check.
type AccessDirectory interface {
	CheckTenantAccess(ctx context.Context, userID, tenantID string) (*domain.TenantAccess, error)
}

// AccessVerifier defines the authorization decision consumed by the
// pipeline. Failures and empty results both mean no access.
type AccessVerifier interface {
	Check(ctx context.Context, userID, tenantID string) *domain.TenantAccess
}
