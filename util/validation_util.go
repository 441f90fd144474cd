// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/headwall-io/gatehouse/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateHostIdentifier rejects empty or obviously malformed host
// identifiers before they reach the registry lookup.
func (v *ValidationUtil) ValidateHostIdentifier(host string) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("host identifier cannot be empty")
	}
	if strings.ContainsAny(host, " /\\") {
		return fmt.Errorf("host identifier contains invalid characters")
	}
	return nil
}

// ValidateTenant checks a tenant record loaded from the store.
func (v *ValidationUtil) ValidateTenant(tenant model.Tenant) error {
	if tenant.ID == "" {
		return fmt.Errorf("tenant ID cannot be empty")
	}
	if tenant.HostIdentifier == "" {
		return fmt.Errorf("tenant host identifier cannot be empty")
	}
	if tenant.Name == "" {
		return fmt.Errorf("tenant name cannot be empty")
	}
	return nil
}

// ValidateAccessCheck checks the inputs of a permission computation. An
// empty resource id is allowed: it asks for platform-level capabilities.
func (v *ValidationUtil) ValidateAccessCheck(principalID, resourceID string) error {
	if principalID == "" {
		return fmt.Errorf("principal ID cannot be empty")
	}
	return nil
}

// ValidateFeature rejects quota checks against unknown features.
func (v *ValidationUtil) ValidateFeature(feature model.Feature) error {
	switch feature {
	case model.FeatureContacts, model.FeatureLeads, model.FeatureTasks,
		model.FeatureTeamSeats, model.FeatureBlogPosts:
		return nil
	default:
		return fmt.Errorf("unknown feature: %s", feature)
	}
}
