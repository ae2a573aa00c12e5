package domain

import "strings"

// Sentinel subdomain keys returned by DeriveSubdomain.
const (
	// SubdomainDefault addresses the root tenant: either no tenant
	// segmentation is configured, or the request hit the apex domain.
	SubdomainDefault = "default"

	// SubdomainNone means the host did not match the configured root
	// domain at all. The caller decides between the local-development
	// fallback and rejection.
	SubdomainNone = ""
)

// DeriveSubdomain extracts the tenant routing key from a Host header
// value. Pure and case-insensitive; the port suffix is ignored.
// Nested subdomains are preserved ("a.b.<root>" yields "a.b").
func DeriveSubdomain(host, rootDomain string) string {
	cleanHost := strings.ToLower(host)
	if i := strings.IndexByte(cleanHost, ':'); i >= 0 {
		cleanHost = cleanHost[:i]
	}

	root := strings.ToLower(strings.TrimSpace(rootDomain))
	if root == "" {
		return SubdomainDefault
	}

	if cleanHost == root || cleanHost == "www."+root {
		return SubdomainDefault
	}

	if strings.HasSuffix(cleanHost, "."+root) {
		sub := strings.TrimSuffix(cleanHost, "."+root)
		if sub == "" {
			return SubdomainNone
		}
		return sub
	}

	return SubdomainNone
}
