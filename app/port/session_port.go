package port

import (
	"context"
	"net/http"

	"tenant-gateway/app/domain"
)

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

// BackendSessionGateway validates the identity backend's cookie
// session. Validation can rotate the session cookie, so the gateway
// reports Set-Cookie mutations even when no identity is recovered.
type BackendSessionGateway interface {
	ValidateCookieSession(ctx context.Context, cookieHeader string) (*domain.SessionResult, error)
}

// TokenVerifier verifies the independent signed session token. Purely
// local: it can fail only on signature or expiry, never on I/O.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// SessionResolver recovers an authenticated identity from a request,
// trying the backend cookie session first and the signed token second.
type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) *domain.SessionResult
}
