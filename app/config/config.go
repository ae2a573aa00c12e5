package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gateway. Loaded once at
// startup and read-only afterwards; the pipeline never re-reads the
// environment per request.
type Config struct {
	// Server
	Port        string
	Host        string
	LogLevel    string
	Environment string

	// Upstream application the gateway forwards to
	UpstreamURL string

	// Database (tenant directory)
	DatabaseURL      string
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Identity backend (cookie sessions)
	KratosPublicURL string

	// Signed session token
	SessionSecret string

	// Tenant routing
	RootDomain        string
	DefaultTenantID   string
	DefaultTenantName string

	// Request classification. Overridable via the YAML file.
	LocalHosts  []string
	PublicPaths []string

	// Bounded deadline for every remote call on the hot path
	RemoteTimeout time.Duration
}

// yamlOverrides is the shape of the optional YAML overrides file.
type yamlOverrides struct {
	LocalHosts  []string `yaml:"local_hosts"`
	PublicPaths []string `yaml:"public_paths"`
}

// Load reads configuration from environment variables, then applies
// the optional YAML overrides file named by GATEWAY_CONFIG_FILE.
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	config.Environment = getEnvOrDefault("APP_ENV", "development")

	// Upstream
	config.UpstreamURL = os.Getenv("UPSTREAM_URL")
	if config.UpstreamURL == "" {
		return nil, fmt.Errorf("UPSTREAM_URL is required")
	}

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "tenant-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "tenant_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "tenant_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	// Session token secret
	config.SessionSecret = os.Getenv("SESSION_SECRET")
	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	// Tenant routing
	config.RootDomain = os.Getenv("ROOT_DOMAIN")
	config.DefaultTenantID = getEnvOrDefault("DEFAULT_TENANT_ID", "dev-tenant")
	config.DefaultTenantName = getEnvOrDefault("DEFAULT_TENANT_NAME", "Development")

	// Classification defaults
	config.LocalHosts = []string{"localhost", "127.0.0.1"}
	config.PublicPaths = []string{"/auth/login", "/auth/register", "/auth/error", "/landing", "/healthz"}

	// Remote call deadline
	var err error
	timeoutStr := getEnvOrDefault("REMOTE_TIMEOUT", "3s")
	config.RemoteTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REMOTE_TIMEOUT: %w", err)
	}

	// Optional YAML overrides
	if path := os.Getenv("GATEWAY_CONFIG_FILE"); path != "" {
		if err := config.applyOverrides(path); err != nil {
			return nil, fmt.Errorf("failed to apply config overrides: %w", err)
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// applyOverrides merges list-valued settings from the YAML file.
func (c *Config) applyOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overrides yamlOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(overrides.LocalHosts) > 0 {
		c.LocalHosts = overrides.LocalHosts
	}
	if len(overrides.PublicPaths) > 0 {
		c.PublicPaths = overrides.PublicPaths
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate environment
	validEnvs := []string{"development", "staging", "production"}
	if !contains(validEnvs, c.Environment) {
		return fmt.Errorf("invalid environment: %s (must be one of: %s)", c.Environment, strings.Join(validEnvs, ", "))
	}

	// Validate session secret length (minimum 32 bytes for HS256)
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters, got: %d", len(c.SessionSecret))
	}

	// Validate remote timeout (this runs on every request)
	if c.RemoteTimeout < 100*time.Millisecond || c.RemoteTimeout > 30*time.Second {
		return fmt.Errorf("remote timeout must be between 100ms and 30s, got: %v", c.RemoteTimeout)
	}

	return nil
}

// IsProduction reports whether the gateway runs in production mode.
// Dev-only endpoints and the local fallback are gated on this.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
