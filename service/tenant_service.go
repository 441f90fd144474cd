// service/tenant_service.go
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/headwall-io/gatehouse/cache"
	"github.com/headwall-io/gatehouse/db"
	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/metrics"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/util"
)

// ITenantService resolves inbound host identifiers to tenant descriptors.
type ITenantService interface {
	ResolveTenant(ctx context.Context, host string) (*model.Tenant, error)
	InvalidateHost(ctx context.Context, host string)
	ClearCache()
}

// TenantService wraps the registry lookup with a TTL cache. Concurrent
// misses for the same host share one lookup; every page render goes through
// here, so a resolved tenant must be cheap to re-read.
type TenantService struct {
	tenantStore    TenantStore
	validationUtil *util.ValidationUtil
	tenantCache    *cache.Cache[*model.Tenant]
	cacheTTL       time.Duration
	useSharedCache bool
}

var _ ITenantService = &TenantService{}

// NewTenantService creates a new instance of TenantService. The cache
// instance belongs to this service; nothing else reads or writes it.
func NewTenantService(tenantStore TenantStore, validationUtil *util.ValidationUtil, cacheTTL time.Duration, eventBus *util.EventBus, useSharedCache bool) *TenantService {
	service := &TenantService{
		tenantStore:    tenantStore,
		validationUtil: validationUtil,
		tenantCache:    cache.New[*model.Tenant](),
		cacheTTL:       cacheTTL,
		useSharedCache: useSharedCache,
	}

	eventBus.Subscribe(util.EventTenantUpdated, service.handleTenantUpdated)

	return service
}

func (s *TenantService) handleTenantUpdated(ctx context.Context, event util.Event) error {
	host, ok := event.Payload.(string)
	if !ok {
		return nil
	}
	logger.Info("Tenant updated event received", zap.String("host", host))
	s.InvalidateHost(ctx, host)
	return nil
}

func cacheKeyForHost(host string) string {
	return "tenant:" + strings.ToLower(strings.TrimSpace(host))
}

// ResolveTenant maps a host identifier to its tenant.
//
// A cached, unexpired entry is returned with no I/O. On a miss, one lookup
// runs regardless of how many requests arrive concurrently for the same
// host. Rows that are present but missing identity fields come back as
// ErrInvalidTenantData: retrying cannot fix bad data. Store failures
// propagate as transient so the caller may retry, and are never cached.
func (s *TenantService) ResolveTenant(ctx context.Context, host string) (*model.Tenant, error) {
	if err := s.validationUtil.ValidateHostIdentifier(host); err != nil {
		return nil, gatehouse_errors.ErrInvalidHost
	}

	key := cacheKeyForHost(host)
	if tenant, ok := s.tenantCache.Get(key); ok {
		metrics.RecordCacheHit("tenant")
		return tenant, nil
	}
	metrics.RecordCacheMiss("tenant")

	return s.tenantCache.GetOrCompute(ctx, key, s.cacheTTL, func(ctx context.Context) (*model.Tenant, error) {
		return s.lookupTenant(ctx, host)
	})
}

func (s *TenantService) lookupTenant(ctx context.Context, host string) (*model.Tenant, error) {
	// Second-level cache shared across instances, when enabled.
	if s.useSharedCache {
		if tenant, err := db.GetCachedTenant(ctx, strings.ToLower(host)); err != nil {
			logger.Warn("Shared tenant cache read failed", zap.Error(err), zap.String("host", host))
		} else if tenant.Valid() {
			metrics.RecordTenantLookup("shared_cache")
			return tenant, nil
		}
	}

	tenant, err := s.tenantStore.ResolveTenant(ctx, host)
	if err != nil {
		metrics.RecordTenantLookup("error")
		return nil, gatehouse_errors.Transient("tenant lookup", err)
	}
	if tenant == nil {
		metrics.RecordTenantLookup("not_found")
		return nil, gatehouse_errors.ErrTenantNotFound
	}
	if err := s.validationUtil.ValidateTenant(*tenant); err != nil {
		metrics.RecordTenantLookup("invalid")
		logger.Warn("Registry returned malformed tenant record",
			zap.String("host", host),
			zap.Error(err))
		return nil, gatehouse_errors.ErrInvalidTenantData
	}

	metrics.RecordTenantLookup("ok")

	if s.useSharedCache {
		if err := db.CacheTenant(ctx, tenant); err != nil {
			logger.Warn("Shared tenant cache write failed", zap.Error(err), zap.String("host", host))
		}
	}

	return tenant, nil
}

// InvalidateHost drops the cached entry for one host, locally and in the
// shared cache.
func (s *TenantService) InvalidateHost(ctx context.Context, host string) {
	s.tenantCache.Invalidate(cacheKeyForHost(host))
	if s.useSharedCache {
		if err := db.DeleteCachedTenant(ctx, strings.ToLower(host)); err != nil {
			logger.Warn("Shared tenant cache delete failed", zap.Error(err), zap.String("host", host))
		}
	}
}

// ClearCache drops every cached tenant.
func (s *TenantService) ClearCache() {
	s.tenantCache.Clear()
}
