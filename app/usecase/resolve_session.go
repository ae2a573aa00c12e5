package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

const (
	// kratosSessionCookie marks a browser session issued by the
	// identity backend. Its absence skips the network round-trip.
	kratosSessionCookie = "ory_kratos_session"

	// sessionTokenCookie carries the independent signed token.
	sessionTokenCookie = "session_token"
)

// SessionResolverUsecase recovers an identity from a request across
// the two session mechanisms, in fixed order: the backend cookie
// session first, then the signed token. The mechanisms are never
// merged; whichever succeeds first wins. Cookie rotations produced by
// the backend are preserved even when the token path decides identity.
type SessionResolverUsecase struct {
	backend port.BackendSessionGateway
	tokens  port.TokenVerifier
	timeout time.Duration
	logger  *slog.Logger
}

// NewSessionResolver creates a new session resolver
func NewSessionResolver(backend port.BackendSessionGateway, tokens port.TokenVerifier, timeout time.Duration, logger *slog.Logger) port.SessionResolver {
	return &SessionResolverUsecase{
		backend: backend,
		tokens:  tokens,
		timeout: timeout,
		logger:  logger.With("component", "session_resolver"),
	}
}

// Resolve implements port.SessionResolver. It never fails: the worst
// outcome is an anonymous result.
func (u *SessionResolverUsecase) Resolve(ctx context.Context, r *http.Request) *domain.SessionResult {
	result := &domain.SessionResult{}

	// Attempt 1: backend cookie session
	if cookieHeader := r.Header.Get("Cookie"); strings.Contains(cookieHeader, kratosSessionCookie) {
		callCtx, cancel := context.WithTimeout(ctx, u.timeout)
		backendResult, err := u.backend.ValidateCookieSession(callCtx, cookieHeader)
		cancel()

		if backendResult != nil {
			result.SetCookies = backendResult.SetCookies
			if err == nil && backendResult.Identity != nil {
				result.Identity = backendResult.Identity
				return result
			}
		}
		if err != nil {
			u.logger.Debug("backend session validation failed", "error", err)
		}
	}

	// Attempt 2: signed session token, no network round-trip
	tokenString := extractSessionToken(r)
	userID, err := u.tokens.Verify(tokenString)
	if err != nil {
		u.logger.Debug("session token rejected", "error", err)
		return result
	}

	result.Identity = &domain.Identity{
		UserID: userID,
		Source: domain.SessionSourceToken,
	}
	return result
}

// extractSessionToken pulls the signed token from the session cookie,
// the Authorization header, or the X-Session-Token header, in that
// order.
func extractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if auth := r.Header.Get("Authorization"); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return r.Header.Get("X-Session-Token")
}
