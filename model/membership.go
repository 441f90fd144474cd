package model

import "time"

// Role is a delegated access level granted through a team membership.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
)

// MembershipStatus tracks the membership lifecycle. Revocation is a soft
// delete so the invitation history stays auditable.
type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipRevoked MembershipStatus = "revoked"
)

// TeamMembership grants a principal delegated access to a resource. At most
// one active membership may exist per (resource, principal) pair.
//
// Overrides is sparse and tri-state: a capability mapped to true or false
// replaces the role default for that capability only; an absent (or nil)
// entry inherits the role default. Collapsing this to plain booleans would
// lose the override-vs-inherit distinction, so it stays a map of pointers.
type TeamMembership struct {
	ResourceID  string               `json:"resource_id"`
	PrincipalID string               `json:"principal_id"`
	Role        Role                 `json:"role"`
	Status      MembershipStatus     `json:"status"`
	Overrides   map[Capability]*bool `json:"overrides,omitempty"`
	InvitedBy   string               `json:"invited_by,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
