package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"tenant-gateway/app/config"
)

// Client wraps the Kratos public API. The gateway only consumes the
// frontend surface (whoami); admin operations belong to other services.
type Client struct {
	publicAPI *kratosclient.APIClient
	publicURL string
	logger    *slog.Logger
}

// NewClient creates a new Kratos client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.KratosPublicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", cfg.KratosPublicURL)
	}

	publicConfig := kratosclient.NewConfiguration()
	publicConfig.Servers = []kratosclient.ServerConfiguration{
		{
			URL: cfg.KratosPublicURL,
		},
	}
	// The whoami call runs on the hot path of every protected request,
	// so the HTTP client carries the configured bounded timeout.
	publicConfig.HTTPClient = &http.Client{
		Timeout: cfg.RemoteTimeout,
	}
	if publicConfig.DefaultHeader == nil {
		publicConfig.DefaultHeader = make(map[string]string)
	}
	publicConfig.DefaultHeader["Accept"] = "application/json"

	publicAPI := kratosclient.NewAPIClient(publicConfig)

	logger.Info("Kratos client initialized", "public_url", cfg.KratosPublicURL)

	return &Client{
		publicAPI: publicAPI,
		publicURL: cfg.KratosPublicURL,
		logger:    logger,
	}, nil
}

// PublicAPI returns the public API client
func (c *Client) PublicAPI() *kratosclient.APIClient {
	return c.publicAPI
}

// HealthCheck checks if Kratos is reachable
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.publicURL+"/health/ready", nil)
	if err != nil {
		return fmt.Errorf("failed to build health check request: %w", err)
	}

	resp, err := c.publicAPI.GetConfig().HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("kratos health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kratos not ready: status %d", resp.StatusCode)
	}
	return nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
