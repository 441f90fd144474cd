package model

// Unlimited marks a feature with no plan ceiling.
const Unlimited = -1

// PlanLimits maps a feature to its ceiling for one plan tier.
type PlanLimits map[Feature]int

// DefaultPlanLimits is the built-in limit table. Individual entries can be
// overridden through configuration (plans.<tier>.<feature>).
var DefaultPlanLimits = map[PlanTier]PlanLimits{
	PlanFree: {
		FeatureContacts:  25,
		FeatureLeads:     10,
		FeatureTasks:     50,
		FeatureTeamSeats: 1,
		FeatureBlogPosts: 3,
	},
	PlanStandard: {
		FeatureContacts:  100,
		FeatureLeads:     50,
		FeatureTasks:     500,
		FeatureTeamSeats: 3,
		FeatureBlogPosts: 20,
	},
	PlanBusiness: {
		FeatureContacts:  1000,
		FeatureLeads:     500,
		FeatureTasks:     5000,
		FeatureTeamSeats: 10,
		FeatureBlogPosts: 100,
	},
	PlanPremium: {
		FeatureContacts:  Unlimited,
		FeatureLeads:     Unlimited,
		FeatureTasks:     Unlimited,
		FeatureTeamSeats: Unlimited,
		FeatureBlogPosts: Unlimited,
	},
}

// LimitFor returns the ceiling for a tier/feature pair. Unknown tiers fall
// back to the free tier; a feature missing from the table is unlimited.
func LimitFor(tier PlanTier, feature Feature) int {
	limits, ok := DefaultPlanLimits[tier]
	if !ok {
		limits = DefaultPlanLimits[PlanFree]
	}
	limit, ok := limits[feature]
	if !ok {
		return Unlimited
	}
	return limit
}

// QuotaDecision is the quota enforcer's verdict. The check is advisory:
// it reserves nothing, so two concurrent creates can both pass and briefly
// overshoot the ceiling.
type QuotaDecision struct {
	Allowed bool    `json:"allowed"`
	Feature Feature `json:"feature"`
	Limit   int     `json:"limit"`
	Current int     `json:"current"`
}
