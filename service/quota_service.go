// service/quota_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/headwall-io/gatehouse/config"
	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/metrics"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/util"
)

// IQuotaService enforces plan-tier usage ceilings on mutating operations.
type IQuotaService interface {
	CheckQuota(ctx context.Context, principalID, resourceID string, feature model.Feature) (model.QuotaDecision, error)
}

// QuotaService compares current live usage against the plan-tier limit for a
// feature. The check is advisory: it reserves no capacity, so two concurrent
// creates can both pass and briefly exceed the ceiling. A hard cap would
// need a reservation step in the write path, not a stricter check here.
type QuotaService struct {
	resourceStore  ResourceStore
	principalStore PrincipalStore
	validationUtil *util.ValidationUtil
}

var _ IQuotaService = &QuotaService{}

// NewQuotaService creates a new instance of QuotaService
func NewQuotaService(resourceStore ResourceStore, principalStore PrincipalStore, validationUtil *util.ValidationUtil) *QuotaService {
	return &QuotaService{
		resourceStore:  resourceStore,
		principalStore: principalStore,
		validationUtil: validationUtil,
	}
}

// CheckQuota reports whether one more entity of feature may be created under
// the principal's plan. A denial returns the populated decision together
// with a QuotaExceededError carrying limit and usage. Uncertainty denies: a
// store failure comes back as a transient error with Allowed false.
func (s *QuotaService) CheckQuota(ctx context.Context, principalID, resourceID string, feature model.Feature) (model.QuotaDecision, error) {
	decision := model.QuotaDecision{Feature: feature}

	if err := s.validationUtil.ValidateFeature(feature); err != nil {
		return decision, err
	}

	profile, err := s.principalStore.FetchPrincipalProfile(ctx, principalID)
	if err != nil {
		return decision, gatehouse_errors.Transient("principal profile fetch", err)
	}
	tier := model.PlanFree
	if profile != nil {
		tier = profile.PlanTier
	}

	limit := model.LimitFor(tier, feature)
	if override, ok := config.PlanLimitOverride(string(tier), string(feature)); ok {
		limit = override
	}
	decision.Limit = limit

	if limit == model.Unlimited {
		decision.Allowed = true
		return decision, nil
	}

	current, err := s.resourceStore.CountLiveEntities(ctx, resourceID, feature)
	if err != nil {
		return decision, gatehouse_errors.Transient("entity count", err)
	}
	decision.Current = current
	decision.Allowed = current < limit

	if !decision.Allowed {
		metrics.RecordQuotaDenial(string(tier), string(feature))
		logger.Info("Quota exceeded",
			zap.String("principalID", principalID),
			zap.String("resourceID", resourceID),
			zap.String("feature", string(feature)),
			zap.Int("limit", limit),
			zap.Int("current", current))
		return decision, &gatehouse_errors.QuotaExceededError{
			Feature: string(feature),
			Limit:   limit,
			Current: current,
		}
	}

	return decision, nil
}
