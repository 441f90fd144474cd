package model

import "time"

// Resource is a protected business/account record. A resource belongs to
// exactly one tenant and has exactly one owning principal.
type Resource struct {
	ID               string     `json:"id"`
	OwnerPrincipalID string     `json:"owner_principal_id"`
	TenantID         string     `json:"tenant_id"`
	Name             string     `json:"name"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// Feature names the countable entities a plan tier puts a ceiling on.
type Feature string

const (
	FeatureContacts  Feature = "contacts"
	FeatureLeads     Feature = "leads"
	FeatureTasks     Feature = "tasks"
	FeatureTeamSeats Feature = "team_seats"
	FeatureBlogPosts Feature = "blog_posts"
)
