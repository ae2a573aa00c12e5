package kratos

import (
	"context"
	"log/slog"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// SessionGateway validates browser cookie sessions against Kratos.
// It implements port.BackendSessionGateway.
type SessionGateway struct {
	client *Client
	logger *slog.Logger
}

// NewSessionGateway creates a new Kratos session gateway
func NewSessionGateway(client *Client, logger *slog.Logger) port.BackendSessionGateway {
	return &SessionGateway{
		client: client,
		logger: logger.With("component", "kratos_session_gateway"),
	}
}

// ValidateCookieSession forwards the request's Cookie header to the
// whoami endpoint. Kratos may rotate the session cookie during
// validation; those Set-Cookie values are reported back even when the
// session itself turns out to be invalid, so the caller can preserve
// the rotation on its response.
func (g *SessionGateway) ValidateCookieSession(ctx context.Context, cookieHeader string) (*domain.SessionResult, error) {
	result := &domain.SessionResult{}
	if cookieHeader == "" {
		return result, nil
	}

	resp, httpResp, err := g.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		Cookie(cookieHeader).
		Execute()

	if httpResp != nil {
		result.SetCookies = httpResp.Header.Values("Set-Cookie")
	}

	if err != nil {
		// Invalid or expired cookie sessions are routine; the caller
		// falls through to the signed-token mechanism.
		g.logger.Debug("kratos session validation failed", "error", err)
		return result, nil
	}

	if resp == nil || resp.Identity == nil || resp.Identity.Id == "" {
		return result, nil
	}

	result.Identity = &domain.Identity{
		UserID: resp.Identity.Id,
		Source: domain.SessionSourceBackend,
	}
	g.logger.Debug("kratos session validated", "user_id", result.Identity.UserID)
	return result, nil
}
