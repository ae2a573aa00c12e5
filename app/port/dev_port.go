package port

import (
	"context"

	"tenant-gateway/app/domain"
)

//go:generate mockgen -source=dev_port.go -destination=../mocks/mock_dev_port.go -package=mocks

// DevSeeder provisions tenants and access rows for local development.
// Only reachable through the dev-only endpoints, never in production.
type DevSeeder interface {
	SeedTenant(ctx context.Context, tenant *domain.Tenant) error
	GrantAccess(ctx context.Context, userID, tenantID string, role domain.UserRole) error
}
