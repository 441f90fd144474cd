package model

import "time"

// PlanTier is a subscription level that bounds feature usage quotas.
type PlanTier string

const (
	PlanFree     PlanTier = "free"
	PlanStandard PlanTier = "standard"
	PlanBusiness PlanTier = "business"
	PlanPremium  PlanTier = "premium"
)

// PrincipalProfile is the principal data the engine reads from the backing
// store when only an authenticated id is known: the platform-admin flag and
// the plan tier that bounds quotas.
type PrincipalProfile struct {
	IsPlatformAdmin bool      `json:"is_platform_admin"`
	PlanTier        PlanTier  `json:"plan_tier"`
	UpdatedAt       time.Time `json:"updated_at"`
}
