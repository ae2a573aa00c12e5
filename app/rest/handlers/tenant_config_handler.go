package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// TenantConfigHandler serves the public tenant-config read. The
// storefront fetches this before any login happens, so the endpoint
// is classified as pass-through by the pipeline and served here.
type TenantConfigHandler struct {
	tenants           port.TenantResolver
	rootDomain        string
	defaultTenantID   string
	defaultTenantName string
	localHosts        []string
	logger            *slog.Logger
}

// NewTenantConfigHandler creates a new tenant config handler
func NewTenantConfigHandler(tenants port.TenantResolver, rootDomain, defaultTenantID, defaultTenantName string, localHosts []string, logger *slog.Logger) *TenantConfigHandler {
	return &TenantConfigHandler{
		tenants:           tenants,
		rootDomain:        rootDomain,
		defaultTenantID:   defaultTenantID,
		defaultTenantName: defaultTenantName,
		localHosts:        localHosts,
		logger:            logger.With("component", "tenant_config_handler"),
	}
}

// GetConfig resolves the tenant addressed by the request host and
// returns its public configuration.
func (h *TenantConfigHandler) GetConfig(c echo.Context) error {
	subdomain := domain.DeriveSubdomain(c.Request().Host, h.rootDomain)

	if subdomain != domain.SubdomainNone {
		tenant, err := h.tenants.Resolve(c.Request().Context(), subdomain)
		if err == nil {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"id":        tenant.ID,
				"name":      tenant.Name,
				"subdomain": tenant.Subdomain,
			})
		}
	}

	// Mirror the pipeline's local fallback so dev setups get a usable
	// placeholder instead of an error.
	if h.isLocalRequest(c.Request().Host) {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":        h.defaultTenantID,
			"name":      h.defaultTenantName,
			"subdomain": subdomain,
		})
	}

	h.logger.Warn("tenant config requested for unknown tenant", "subdomain", subdomain)
	return c.JSON(http.StatusNotFound, map[string]interface{}{
		"error": "tenant not found",
	})
}

// isLocalRequest recognizes local-development hosts, using the same
// configured list the pipeline's DevFallback is gated on.
func (h *TenantConfigHandler) isLocalRequest(host string) bool {
	cleanHost := strings.ToLower(host)
	if i := strings.IndexByte(cleanHost, ':'); i >= 0 {
		cleanHost = cleanHost[:i]
	}
	for _, lh := range h.localHosts {
		if cleanHost == lh || strings.HasSuffix(cleanHost, "."+lh) {
			return true
		}
	}
	return false
}
