// audit/model.go
package audit

import "time"

// DecisionLog records a single authorization decision: which tier of the
// precedence chain matched, whether access was granted, and for denials,
// the capability that was missing.
type DecisionLog struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	PrincipalID   string    `json:"principal_id"`
	TenantID      string    `json:"tenant_id,omitempty"`
	ResourceID    string    `json:"resource_id,omitempty"`
	Capability    string    `json:"capability,omitempty"`
	AccessGranted bool      `json:"access_granted"`
	MatchedTier   string    `json:"matched_tier"` // "ownership", "platform_admin", "membership", "default_deny"
	Detail        string    `json:"detail,omitempty"`
}

// IntegrityWarning records a data-integrity violation observed during
// permission resolution, such as multiple active memberships for one
// (resource, principal) pair.
type IntegrityWarning struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Kind        string    `json:"kind"`
	PrincipalID string    `json:"principal_id,omitempty"`
	ResourceID  string    `json:"resource_id,omitempty"`
	Detail      string    `json:"detail"`
}
