package domain

// SessionSource identifies which of the two independent session
// mechanisms produced an identity. The resolution order is fixed:
// the backend cookie session is tried first, then the signed token.
type SessionSource string

const (
	SessionSourceBackend SessionSource = "backend"
	SessionSourceToken   SessionSource = "token"
)

// Identity is an authenticated operator recovered from a request.
type Identity struct {
	UserID string
	Source SessionSource
}

// SessionResult carries a resolved identity together with any
// Set-Cookie values the backend produced while validating it. Cookie
// rotation happens even when validation ultimately fails, so the
// mutations must be applied to the response regardless of which
// mechanism (if any) yielded the identity.
type SessionResult struct {
	Identity   *Identity
	SetCookies []string
}

// Anonymous reports whether no identity was recovered.
func (r *SessionResult) Anonymous() bool {
	return r == nil || r.Identity == nil || r.Identity.UserID == ""
}
