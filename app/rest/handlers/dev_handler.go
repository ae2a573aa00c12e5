package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// DevHandler serves the development tooling endpoints. The pipeline
// only lets these through when the gateway is not in production.
type DevHandler struct {
	seeder   port.DevSeeder
	store    HealthChecker
	identity HealthChecker
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDevHandler creates a new dev tooling handler
func NewDevHandler(seeder port.DevSeeder, store, identity HealthChecker, logger *slog.Logger) *DevHandler {
	return &DevHandler{
		seeder:   seeder,
		store:    store,
		identity: identity,
		validate: validator.New(),
		logger:   logger.With("component", "dev_handler"),
	}
}

// SeedRequest provisions one tenant with an admin user.
type SeedRequest struct {
	Subdomain   string `json:"subdomain" validate:"required,hostname_rfc1123,min=2,max=63"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	AdminUserID string `json:"admin_user_id" validate:"required,uuid4"`
}

// Seed creates a tenant and grants its admin access.
func (h *DevHandler) Seed(c echo.Context) error {
	var req SeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation failed",
			"details": err.Error(),
		})
	}

	ctx := c.Request().Context()
	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Subdomain: req.Subdomain,
		IsActive:  true,
	}

	if err := h.seeder.SeedTenant(ctx, tenant); err != nil {
		h.logger.Error("tenant seeding failed", "subdomain", req.Subdomain, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "failed to seed tenant",
		})
	}

	if err := h.seeder.GrantAccess(ctx, req.AdminUserID, tenant.ID, domain.RoleAdmin); err != nil {
		h.logger.Error("access grant failed", "tenant_id", tenant.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "failed to grant admin access",
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"tenant": tenant,
		"admin":  req.AdminUserID,
	})
}

// TestConnection reports reachability of the gateway's dependencies.
func (h *DevHandler) TestConnection(c echo.Context) error {
	ctx := c.Request().Context()
	report := map[string]interface{}{
		"tenant_store":     "ok",
		"identity_backend": "ok",
	}
	status := http.StatusOK

	if err := h.store.HealthCheck(ctx); err != nil {
		report["tenant_store"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.identity.HealthCheck(ctx); err != nil {
		report["identity_backend"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, report)
}
