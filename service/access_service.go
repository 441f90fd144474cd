// service/access_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/headwall-io/gatehouse/audit"
	"github.com/headwall-io/gatehouse/cache"
	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/metrics"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/util"
)

// Precedence tiers, in evaluation order. First match wins.
const (
	TierOwnership     = "ownership"
	TierPlatformAdmin = "platform_admin"
	TierMembership    = "membership"
	TierDefaultDeny   = "default_deny"
)

// IAccessService computes effective capability sets for a principal against
// a resource. An empty resource id asks for platform-level capabilities:
// only the platform-admin tier can grant there.
type IAccessService interface {
	ComputePermissions(ctx context.Context, principalID, resourceID string) (model.PermissionSet, error)
	CheckAccess(ctx context.Context, principalID, resourceID string, capability model.Capability) error
	InvalidatePermissions(resourceID, principalID string)
	InvalidateResource(resourceID string)
	ClearCache()
}

// AccessService resolves permissions with a four-tier precedence chain:
// resource ownership, then platform admin, then delegated membership with
// per-capability overrides, then default deny. Output depends only on the
// inputs and current store state.
type AccessService struct {
	resourceStore   ResourceStore
	membershipStore MembershipStore
	principalStore  PrincipalStore
	validationUtil  *util.ValidationUtil
	auditService    audit.Service
	permissionCache *cache.Cache[model.PermissionSet]
	cacheTTL        time.Duration
}

var _ IAccessService = &AccessService{}

// NewAccessService creates a new instance of AccessService. The permission
// cache instance belongs to this service and is cleared whenever a session
// identity change is published on the bus.
func NewAccessService(
	resourceStore ResourceStore,
	membershipStore MembershipStore,
	principalStore PrincipalStore,
	validationUtil *util.ValidationUtil,
	auditService audit.Service,
	cacheTTL time.Duration,
	eventBus *util.EventBus,
) *AccessService {
	service := &AccessService{
		resourceStore:   resourceStore,
		membershipStore: membershipStore,
		principalStore:  principalStore,
		validationUtil:  validationUtil,
		auditService:    auditService,
		permissionCache: cache.New[model.PermissionSet](),
		cacheTTL:        cacheTTL,
	}

	eventBus.Subscribe(util.EventMembershipUpdated, service.handleMembershipChanged)
	eventBus.Subscribe(util.EventMembershipRevoked, service.handleMembershipChanged)
	eventBus.Subscribe(util.EventResourceUpdated, service.handleResourceUpdated)
	eventBus.Subscribe(util.EventSessionEnded, service.handleSessionEnded)

	return service
}

func (s *AccessService) handleMembershipChanged(ctx context.Context, event util.Event) error {
	membership, ok := event.Payload.(model.TeamMembership)
	if !ok {
		return nil
	}
	logger.Info("Membership change event received",
		zap.String("resourceID", membership.ResourceID),
		zap.String("principalID", membership.PrincipalID))
	s.InvalidatePermissions(membership.ResourceID, membership.PrincipalID)
	return nil
}

func (s *AccessService) handleResourceUpdated(ctx context.Context, event util.Event) error {
	resourceID, ok := event.Payload.(string)
	if !ok {
		return nil
	}
	logger.Info("Resource change event received", zap.String("resourceID", resourceID))
	s.InvalidateResource(resourceID)
	return nil
}

func (s *AccessService) handleSessionEnded(ctx context.Context, event util.Event) error {
	// Cached sets are keyed by principal, but a shared cache must never
	// serve entries across a session identity change, so drop everything.
	s.ClearCache()
	return nil
}

// A resource belongs to exactly one tenant, so keying by resource id keeps
// entries for different tenants disjoint.
func permissionCacheKey(resourceID, principalID string) string {
	return fmt.Sprintf("perm:%s:%s", resourceID, principalID)
}

// ComputePermissions returns the effective capability set for the principal
// on the resource, from cache when fresh. An empty resource id computes
// platform-level capabilities, where only the admin tier applies. A
// transient store failure yields the zero (all-false) set together with a
// retryable error, so a flaky read can never grant access.
func (s *AccessService) ComputePermissions(ctx context.Context, principalID, resourceID string) (model.PermissionSet, error) {
	if err := s.validationUtil.ValidateAccessCheck(principalID, resourceID); err != nil {
		return model.PermissionSet{}, gatehouse_errors.ErrPrincipalNotFound
	}

	key := permissionCacheKey(resourceID, principalID)
	if ps, ok := s.permissionCache.Get(key); ok {
		metrics.RecordCacheHit("permission")
		return ps, nil
	}
	metrics.RecordCacheMiss("permission")

	return s.permissionCache.GetOrCompute(ctx, key, s.cacheTTL, func(ctx context.Context) (model.PermissionSet, error) {
		return s.resolve(ctx, principalID, resourceID)
	})
}

func (s *AccessService) resolve(ctx context.Context, principalID, resourceID string) (model.PermissionSet, error) {
	// No resource context: only the platform-admin tier can match.
	if resourceID == "" {
		return s.resolvePlatform(ctx, principalID)
	}

	resource, err := s.resourceStore.FetchResource(ctx, resourceID)
	if err != nil {
		return model.PermissionSet{}, gatehouse_errors.Transient("resource fetch", err)
	}
	if resource == nil {
		return model.PermissionSet{}, gatehouse_errors.ErrResourceNotFound
	}

	// Tier 1: ownership. Wins over any conflicting membership or override.
	if resource.OwnerPrincipalID == principalID {
		s.recordDecision(ctx, principalID, resource.TenantID, resource.ID, TierOwnership, true, "")
		return model.FullPermissionSet(), nil
	}

	// Tier 2: platform admin.
	profile, err := s.principalStore.FetchPrincipalProfile(ctx, principalID)
	if err != nil {
		return model.PermissionSet{}, gatehouse_errors.Transient("principal profile fetch", err)
	}
	if profile != nil && profile.IsPlatformAdmin {
		s.recordDecision(ctx, principalID, resource.TenantID, resource.ID, TierPlatformAdmin, true, "")
		return model.FullPermissionSet(), nil
	}

	// Tier 3: delegated membership with overrides.
	memberships, err := s.membershipStore.FetchActiveMemberships(ctx, resourceID, principalID)
	if err != nil {
		return model.PermissionSet{}, gatehouse_errors.Transient("membership fetch", err)
	}
	if len(memberships) > 0 {
		membership := memberships[0] // freshest first
		if len(memberships) > 1 {
			s.reportDuplicateMemberships(ctx, principalID, resourceID, len(memberships))
		}
		ps := model.ApplyOverrides(model.RoleDefaults(membership.Role), membership.Overrides)
		s.recordDecision(ctx, principalID, resource.TenantID, resource.ID, TierMembership, true, string(membership.Role))
		return ps, nil
	}

	// Tier 4: default deny.
	s.recordDecision(ctx, principalID, resource.TenantID, resource.ID, TierDefaultDeny, false, "")
	return model.PermissionSet{}, nil
}

// resolvePlatform evaluates a permission computation with no resource in
// scope. Ownership and membership are resource-bound, so a platform admin
// gets the full set and everyone else is denied.
func (s *AccessService) resolvePlatform(ctx context.Context, principalID string) (model.PermissionSet, error) {
	profile, err := s.principalStore.FetchPrincipalProfile(ctx, principalID)
	if err != nil {
		return model.PermissionSet{}, gatehouse_errors.Transient("principal profile fetch", err)
	}
	if profile != nil && profile.IsPlatformAdmin {
		s.recordDecision(ctx, principalID, "", "", TierPlatformAdmin, true, "")
		return model.FullPermissionSet(), nil
	}
	s.recordDecision(ctx, principalID, "", "", TierDefaultDeny, false, "")
	return model.PermissionSet{}, nil
}

func (s *AccessService) reportDuplicateMemberships(ctx context.Context, principalID, resourceID string, count int) {
	logger.Warn("Multiple active memberships for one pair, using most recently updated",
		zap.String("principalID", principalID),
		zap.String("resourceID", resourceID),
		zap.Int("count", count))
	s.auditService.RecordIntegrityWarning(ctx, audit.IntegrityWarning{
		Kind:        "duplicate_active_membership",
		PrincipalID: principalID,
		ResourceID:  resourceID,
		Detail:      fmt.Sprintf("%d active memberships found, expected at most 1", count),
	})
}

func (s *AccessService) recordDecision(ctx context.Context, principalID, tenantID, resourceID, tier string, granted bool, detail string) {
	metrics.RecordDecision(tier, granted)
	s.auditService.RecordDecision(ctx, audit.DecisionLog{
		PrincipalID:   principalID,
		TenantID:      tenantID,
		ResourceID:    resourceID,
		AccessGranted: granted,
		MatchedTier:   tier,
		Detail:        detail,
	})
}

// CheckAccess verifies one capability and returns a typed denial naming the
// missing capability when the principal lacks it. Denials are audited with
// the capability that was asked for; the underlying tier decision is audited
// separately when the set is computed.
func (s *AccessService) CheckAccess(ctx context.Context, principalID, resourceID string, capability model.Capability) error {
	ps, err := s.ComputePermissions(ctx, principalID, resourceID)
	if err != nil {
		return err
	}
	if !ps.Has(capability) {
		s.auditService.RecordDecision(ctx, audit.DecisionLog{
			PrincipalID:   principalID,
			ResourceID:    resourceID,
			Capability:    string(capability),
			AccessGranted: false,
			Detail:        "missing capability",
		})
		return &gatehouse_errors.UnauthorizedError{
			PrincipalID: principalID,
			ResourceID:  resourceID,
			Capability:  string(capability),
		}
	}
	return nil
}

// InvalidatePermissions drops the cached set for one (resource, principal)
// pair.
func (s *AccessService) InvalidatePermissions(resourceID, principalID string) {
	s.permissionCache.Invalidate(permissionCacheKey(resourceID, principalID))
}

// InvalidateResource drops the cached sets of every principal on one
// resource, for changes that affect all of them at once, such as an
// ownership transfer or the resource being deleted.
func (s *AccessService) InvalidateResource(resourceID string) {
	if resourceID == "" {
		return
	}
	s.permissionCache.InvalidatePrefix(permissionCacheKey(resourceID, ""))
}

// ClearCache drops every cached permission set.
func (s *AccessService) ClearCache() {
	s.permissionCache.Clear()
}
