package domain

import (
	"strings"
)

// Tenant represents one restaurant organization's isolated namespace.
// It is read-only from the gateway's perspective; creation and
// administration happen out-of-band.
type Tenant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	IsActive  bool   `json:"is_active"`
}

// SchemaName derives the per-tenant namespace key carried in the
// x-tenant-schema header: a fixed prefix plus the tenant id with
// hyphen separators normalized to underscores.
func (t *Tenant) SchemaName() string {
	return TenantSchemaName(t.ID)
}

// TenantSchemaName derives the schema key for an arbitrary tenant id.
// Dev placeholder ids go through the same transform as real ones.
func TenantSchemaName(tenantID string) string {
	return "tenant_" + strings.ReplaceAll(tenantID, "-", "_")
}

// TenantScheme is one candidate mapping of logical tenant fields to a
// set of legacy column names in the tenants table. The store has gone
// through several renames and any deployment may still be on an older
// one, so lookups probe a fixed priority list of these.
type TenantScheme struct {
	SubdomainColumn string
	ActiveColumn    string
	NameColumn      string
}

// TenantSchemes is the probe order for legacy column layouts, first
// match wins. The order is load-bearing: newest layout first.
var TenantSchemes = []TenantScheme{
	{SubdomainColumn: "slug", ActiveColumn: "is_active", NameColumn: "name"},
	{SubdomainColumn: "slug", ActiveColumn: "activo", NameColumn: "nombre"},
	{SubdomainColumn: "subdomain", ActiveColumn: "is_active", NameColumn: "name"},
	{SubdomainColumn: "subdominio", ActiveColumn: "activo", NameColumn: "nombre"},
}

// NormalizeTenantRow maps a raw row read under one of the legacy
// schemes into the canonical Tenant shape. A NULL active flag counts
// as inactive: normalization never assumes a tenant is live.
func NormalizeTenantRow(id string, name, subdomain *string, active *bool, key string) *Tenant {
	t := &Tenant{ID: id, Subdomain: key, Name: "Tenant"}
	if subdomain != nil && *subdomain != "" {
		t.Subdomain = *subdomain
	}
	if name != nil && *name != "" {
		t.Name = *name
	}
	if active != nil {
		t.IsActive = *active
	}
	return t
}
