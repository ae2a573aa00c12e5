package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"tenant-gateway/app/domain"
	"tenant-gateway/app/port"
)

// Classification prefixes. Asset and credential-exchange traffic
// bypasses the pipeline entirely; admin and API traffic additionally
// requires an authenticated, authorized identity.
const (
	loginPath          = "/auth/login"
	adminPrefix        = "/admin"
	apiPrefix          = "/api"
	authAPIPrefix      = "/api/auth"
	devAPIPrefix       = "/api/dev"
	tenantConfigPrefix = "/api/tenant/config"
	staticPrefix       = "/static"
	assetPrefix        = "/_next"
)

// TenantAccessConfig holds the process-wide, read-only settings the
// pipeline consults. Built once at startup from config, never re-read.
type TenantAccessConfig struct {
	RootDomain        string
	DefaultTenantID   string
	DefaultTenantName string
	LocalHosts        []string
	PublicPaths       []string
	Production        bool
}

// TenantAccess is the gateway's request pipeline: classify the
// request, resolve the tenant from the Host header, establish
// identity, verify tenant access, and inject the trust headers the
// upstream application relies on. Every branch ends in a pass-through,
// a redirect, or a terminal status; no error escapes to the caller.
type TenantAccess struct {
	config   TenantAccessConfig
	tenants  port.TenantResolver
	sessions port.SessionResolver
	access   port.AccessVerifier
	logger   *slog.Logger
}

// NewTenantAccess creates the pipeline middleware
func NewTenantAccess(
	config TenantAccessConfig,
	tenants port.TenantResolver,
	sessions port.SessionResolver,
	access port.AccessVerifier,
	logger *slog.Logger,
) *TenantAccess {
	return &TenantAccess{
		config:   config,
		tenants:  tenants,
		sessions: sessions,
		access:   access,
		logger:   logger.With("component", "tenant_access"),
	}
}

// Handle returns the Echo middleware function.
func (m *TenantAccess) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			path := req.URL.Path

			// Trust boundary: client-supplied copies of the injected
			// headers are never forwarded, not even on bypassed paths.
			for _, h := range domain.TrustHeaders {
				req.Header.Del(h)
			}

			// 1. Static assets, framework internals, credential
			// exchange, and the public tenant-config read skip
			// everything, even on an otherwise-invalid host.
			if isStaticOrInternal(path) {
				return next(c)
			}

			// 2. Public pages
			if m.isPublicPath(path) {
				return next(c)
			}

			// 3. Development tooling, never in production
			if !m.config.Production && strings.HasPrefix(path, devAPIPrefix) {
				return next(c)
			}

			// 4. Tenant resolution
			subdomain := domain.DeriveSubdomain(req.Host, m.config.RootDomain)

			var tenant *domain.Tenant
			if subdomain != domain.SubdomainNone {
				resolved, err := m.tenants.Resolve(ctx, subdomain)
				if err == nil {
					tenant = resolved
				}
			}

			devFallback := false
			if tenant != nil {
				req.Header.Set(domain.HeaderTenantID, tenant.ID)
				req.Header.Set(domain.HeaderTenantSchema, tenant.SchemaName())
				req.Header.Set(domain.HeaderTenantName, tenant.Name)
			} else if m.isLocalHost(req.Host) {
				// Development convenience only: a synthesized tenant
				// and no access verification. Unreachable when a real
				// tenant resolves.
				devFallback = true
				req.Header.Set(domain.HeaderTenantID, m.config.DefaultTenantID)
				req.Header.Set(domain.HeaderTenantSchema, domain.TenantSchemaName(m.config.DefaultTenantID))
				req.Header.Set(domain.HeaderTenantName, m.config.DefaultTenantName)
			} else {
				m.logger.Error("tenant not found or inactive", "subdomain", subdomain, "host", req.Host)
				return c.Redirect(http.StatusFound, loginPath+"?error=TenantNotFound")
			}

			// 5. Identity and authorization for protected routes
			if strings.HasPrefix(path, adminPrefix) || strings.HasPrefix(path, apiPrefix) {
				session := m.sessions.Resolve(ctx, req)

				// Cookie rotation from the backend is preserved no
				// matter which mechanism ends up deciding identity.
				for _, sc := range session.SetCookies {
					c.Response().Header().Add("Set-Cookie", sc)
				}

				if session.Anonymous() {
					query := url.Values{}
					query.Set("callbackUrl", path)
					query.Set("tenant", subdomain)
					return c.Redirect(http.StatusFound, loginPath+"?"+query.Encode())
				}

				userID := session.Identity.UserID
				if devFallback {
					if userID != "" {
						req.Header.Set(domain.HeaderUserID, userID)
					}
					req.Header.Set(domain.HeaderUserRole, string(domain.RoleAdmin))
				} else {
					access := m.access.Check(ctx, userID, tenant.ID)
					if access == nil || !access.HasAccess {
						m.logger.Warn("tenant access denied",
							"user_id", userID,
							"tenant_id", tenant.ID,
							"path", path)
						return c.Blob(http.StatusForbidden, "text/plain; charset=utf-8", []byte("unauthorized tenant access"))
					}
					req.Header.Set(domain.HeaderUserID, userID)
					if access.Role != "" {
						req.Header.Set(domain.HeaderUserRole, string(access.Role))
					}
				}
			}

			// 6. Forward with trust headers in place
			return next(c)
		}
	}
}

// isStaticOrInternal classifies paths that bypass the pipeline: the
// framework asset prefix, static files, the credential-exchange API,
// the public tenant-config read, and anything with a file extension.
func isStaticOrInternal(path string) bool {
	return strings.HasPrefix(path, assetPrefix) ||
		strings.HasPrefix(path, staticPrefix) ||
		strings.HasPrefix(path, authAPIPrefix) ||
		strings.HasPrefix(path, tenantConfigPrefix) ||
		strings.Contains(path, ".")
}

func (m *TenantAccess) isPublicPath(path string) bool {
	for _, p := range m.config.PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// isLocalHost reports whether the request host is a recognized
// local-development host. Gate for the DevFallback path.
func (m *TenantAccess) isLocalHost(host string) bool {
	cleanHost := strings.ToLower(host)
	if i := strings.IndexByte(cleanHost, ':'); i >= 0 {
		cleanHost = cleanHost[:i]
	}
	for _, h := range m.config.LocalHosts {
		if cleanHost == h || strings.HasSuffix(cleanHost, "."+h) {
			return true
		}
	}
	return false
}
