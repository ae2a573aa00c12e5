package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"tenant-gateway/app/config"
	"tenant-gateway/app/driver/kratos"
	"tenant-gateway/app/driver/postgres"
	"tenant-gateway/app/driver/token"
	"tenant-gateway/app/port"
	"tenant-gateway/app/rest"
	"tenant-gateway/app/rest/handlers"
	custommw "tenant-gateway/app/rest/middleware"
	"tenant-gateway/app/usecase"
)

// Container holds all dependencies for the gateway
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Usecases
	TenantResolver  port.TenantResolver
	SessionResolver port.SessionResolver
	AccessVerifier  port.AccessVerifier
	DevSeeder       port.DevSeeder
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories and gateways
	tenantDirectory := postgres.NewTenantRepository(container.DB.Pool(), logger)
	accessDirectory := postgres.NewAccessRepository(container.DB.Pool(), logger)
	sessionGateway := kratos.NewSessionGateway(container.KratosClient, logger)
	tokenVerifier := token.NewVerifier(cfg.SessionSecret)
	container.DevSeeder = postgres.NewSeedRepository(container.DB.Pool(), logger)

	// Initialize usecases
	container.TenantResolver = usecase.NewTenantResolver(tenantDirectory, cfg.RemoteTimeout, logger)
	container.SessionResolver = usecase.NewSessionResolver(sessionGateway, tokenVerifier, cfg.RemoteTimeout, logger)
	container.AccessVerifier = usecase.NewAccessVerifier(accessDirectory, cfg.RemoteTimeout, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() (*echo.Echo, error) {
	tenantAccess := custommw.NewTenantAccess(
		custommw.TenantAccessConfig{
			RootDomain:        c.Config.RootDomain,
			DefaultTenantID:   c.Config.DefaultTenantID,
			DefaultTenantName: c.Config.DefaultTenantName,
			LocalHosts:        c.Config.LocalHosts,
			PublicPaths:       c.Config.PublicPaths,
			Production:        c.Config.IsProduction(),
		},
		c.TenantResolver,
		c.SessionResolver,
		c.AccessVerifier,
		c.Logger,
	)

	proxyHandler, err := handlers.NewProxyHandler(c.Config.UpstreamURL, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy handler: %w", err)
	}

	routerConfig := rest.RouterConfig{
		Logger:       c.Logger,
		TenantAccess: tenantAccess,
		Health:       handlers.NewHealthHandler(c.DB, c.KratosClient, c.Logger),
		TenantConfig: handlers.NewTenantConfigHandler(c.TenantResolver, c.Config.RootDomain, c.Config.DefaultTenantID, c.Config.DefaultTenantName, c.Config.LocalHosts, c.Logger),
		Dev:          handlers.NewDevHandler(c.DevSeeder, c.DB, c.KratosClient, c.Logger),
		Proxy:        proxyHandler,
		EnableDev:    !c.Config.IsProduction(),
		EnableDebug:  c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig), nil
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
