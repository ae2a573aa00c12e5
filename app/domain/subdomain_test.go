package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tenant-gateway/app/domain"
)

func TestDeriveSubdomain(t *testing.T) {
	tests := []struct {
		name       string
		host       string
		rootDomain string
		want       string
	}{
		{
			name:       "apex domain yields default tenant",
			host:       "menudiario.app",
			rootDomain: "menudiario.app",
			want:       domain.SubdomainDefault,
		},
		{
			name:       "www yields default tenant",
			host:       "www.menudiario.app",
			rootDomain: "menudiario.app",
			want:       domain.SubdomainDefault,
		},
		{
			name:       "plain subdomain",
			host:       "demo.menudiario.app",
			rootDomain: "menudiario.app",
			want:       "demo",
		},
		{
			name:       "uppercase host is lowered",
			host:       "DEMO.Menudiario.App",
			rootDomain: "menudiario.app",
			want:       "demo",
		},
		{
			name:       "port suffix is stripped",
			host:       "demo.menudiario.app:3000",
			rootDomain: "menudiario.app",
			want:       "demo",
		},
		{
			name:       "nested subdomain labels are preserved",
			host:       "staging.demo.menudiario.app",
			rootDomain: "menudiario.app",
			want:       "staging.demo",
		},
		{
			name:       "no root domain configured yields default tenant",
			host:       "whatever.example.com",
			rootDomain: "",
			want:       domain.SubdomainDefault,
		},
		{
			name:       "unrelated host yields no match",
			host:       "evil.com",
			rootDomain: "menudiario.app",
			want:       domain.SubdomainNone,
		},
		{
			name:       "suffix without separator label yields no match",
			host:       "notmenudiario.app",
			rootDomain: "menudiario.app",
			want:       domain.SubdomainNone,
		},
		{
			name:       "localhost against real root yields no match",
			host:       "localhost:3000",
			rootDomain: "menudiario.app",
			want:       domain.SubdomainNone,
		},
		{
			name:       "root domain compared case-insensitively",
			host:       "demo.menudiario.app",
			rootDomain: "MENUDIARIO.APP",
			want:       "demo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveSubdomain(tt.host, tt.rootDomain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveSubdomain_Deterministic(t *testing.T) {
	first := domain.DeriveSubdomain("Demo.Menudiario.App:443", "menudiario.app")
	second := domain.DeriveSubdomain("Demo.Menudiario.App:443", "menudiario.app")
	assert.Equal(t, first, second)
	assert.Equal(t, "demo", first)
}
