package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker is anything whose reachability gates readiness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	store    HealthChecker
	identity HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store, identity HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		identity: identity,
		logger:   logger.With("component", "health_handler"),
	}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "alive",
		"service":   "tenant-gateway",
		"timestamp": time.Now().UTC(),
	})
}

// Readiness reports whether the tenant store and identity backend are
// reachable.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.store.HealthCheck(ctx); err != nil {
		h.logger.Warn("tenant store not ready", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not_ready",
			"error":  "tenant store unreachable",
		})
	}

	if err := h.identity.HealthCheck(ctx); err != nil {
		h.logger.Warn("identity backend not ready", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not_ready",
			"error":  "identity backend unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ready",
	})
}
