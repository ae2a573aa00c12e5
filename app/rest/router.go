package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tenant-gateway/app/rest/handlers"
	custommw "tenant-gateway/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger       *slog.Logger
	TenantAccess *custommw.TenantAccess
	Health       *handlers.HealthHandler
	TenantConfig *handlers.TenantConfigHandler
	Dev          *handlers.DevHandler
	Proxy        *handlers.ProxyHandler
	EnableDev    bool
	EnableDebug  bool
}

// NewRouter creates and configures the Echo router. Every request
// passes the resolution pipeline; the gateway's own endpoints are the
// only ones it does not forward upstream.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(config.TenantAccess.Handle())

	// Gateway-owned endpoints
	e.GET("/healthz", config.Health.Liveness)
	e.GET("/healthz/ready", config.Health.Readiness)
	e.GET("/api/tenant/config", config.TenantConfig.GetConfig)

	if config.EnableDev {
		dev := e.Group("/api/dev")
		dev.POST("/seed", config.Dev.Seed)
		dev.GET("/test-connection", config.Dev.TestConnection)
	}

	// Everything else is forwarded upstream with trust headers set
	e.Any("/*", config.Proxy.Forward)

	return e
}
