package domain

import "errors"

// Resolution and authorization errors. Remote-call failures are folded
// into the nearest of these at the gateway boundary; no backend error
// ever surfaces as a 5xx from the pipeline.
var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrTenantInactive = errors.New("tenant inactive")

	// Session errors
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidToken   = errors.New("invalid session token")

	// Authorization errors
	ErrAccessDenied = errors.New("tenant access denied")
)
