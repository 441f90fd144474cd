package model

import "time"

// Tenant is an isolated site/customer scope within the platform. Tenants are
// provisioned externally and are read-only to this engine.
type Tenant struct {
	ID             string            `json:"id"`
	HostIdentifier string            `json:"host_identifier"`
	Name           string            `json:"name"`
	SiteType       string            `json:"site_type"` // "directory", "blog", "storefront"
	Config         map[string]string `json:"config,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Valid reports whether a tenant record loaded from the store is well formed.
// Rows missing any of the identity fields are treated as not found rather
// than surfaced to callers.
func (t *Tenant) Valid() bool {
	return t != nil && t.ID != "" && t.HostIdentifier != "" && t.Name != ""
}
