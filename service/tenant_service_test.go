// service/tenant_service_test.go
package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/model"
	"github.com/headwall-io/gatehouse/service"
	mock_store "github.com/headwall-io/gatehouse/test/store_mock"
	"github.com/headwall-io/gatehouse/util"
)

func newTenantService(t *testing.T) (*service.TenantService, *mock_store.MockTenantStore) {
	logger.InitLogger("")

	ctrl := gomock.NewController(t)
	store := mock_store.NewMockTenantStore(ctrl)
	svc := service.NewTenantService(store, util.NewValidationUtil(), time.Minute, util.NewEventBus(), false)
	return svc, store
}

func sampleTenant(host string) *model.Tenant {
	return &model.Tenant{
		ID:             "t1",
		HostIdentifier: host,
		Name:           "Acme Dental",
		SiteType:       "dentist",
	}
}

func TestResolveTenant_SecondLookupServedFromCache(t *testing.T) {
	svc, store := newTenantService(t)

	store.EXPECT().ResolveTenant(gomock.Any(), "acme.example").
		Return(sampleTenant("acme.example"), nil).Times(1)

	first, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
	second, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "t1", second.ID)
}

func TestResolveTenant_HostMatchingIsCaseInsensitive(t *testing.T) {
	svc, store := newTenantService(t)

	// Both spellings share one cache entry, so the store sees one lookup.
	store.EXPECT().ResolveTenant(gomock.Any(), gomock.Any()).
		Return(sampleTenant("acme.example"), nil).Times(1)

	_, err := svc.ResolveTenant(context.Background(), "Acme.Example")
	require.NoError(t, err)
	tenant, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
	assert.Equal(t, "t1", tenant.ID)
}

func TestResolveTenant_EmptyHostRejected(t *testing.T) {
	svc, _ := newTenantService(t)

	_, err := svc.ResolveTenant(context.Background(), "   ")
	assert.ErrorIs(t, err, gatehouse_errors.ErrInvalidHost)
}

func TestResolveTenant_UnknownHost(t *testing.T) {
	svc, store := newTenantService(t)

	store.EXPECT().ResolveTenant(gomock.Any(), "nobody.example").Return(nil, nil)

	_, err := svc.ResolveTenant(context.Background(), "nobody.example")
	assert.ErrorIs(t, err, gatehouse_errors.ErrTenantNotFound)
}

func TestResolveTenant_MalformedRecordRejected(t *testing.T) {
	svc, store := newTenantService(t)

	store.EXPECT().ResolveTenant(gomock.Any(), "broken.example").
		Return(&model.Tenant{ID: "t2", HostIdentifier: "broken.example"}, nil)

	_, err := svc.ResolveTenant(context.Background(), "broken.example")
	assert.ErrorIs(t, err, gatehouse_errors.ErrInvalidTenantData)
	assert.False(t, gatehouse_errors.IsTransient(err), "bad data is not retryable")
}

func TestResolveTenant_StoreFailureIsTransientAndNotCached(t *testing.T) {
	svc, store := newTenantService(t)

	store.EXPECT().ResolveTenant(gomock.Any(), "acme.example").
		Return(nil, errors.New("neo4j unreachable")).Times(1)
	store.EXPECT().ResolveTenant(gomock.Any(), "acme.example").
		Return(sampleTenant("acme.example"), nil).Times(1)

	_, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.Error(t, err)
	assert.True(t, gatehouse_errors.IsTransient(err))

	// The failure must not poison the cache; the retry reaches the store.
	tenant, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
	assert.Equal(t, "t1", tenant.ID)
}

func TestInvalidateHost_ForcesRefetch(t *testing.T) {
	svc, store := newTenantService(t)

	store.EXPECT().ResolveTenant(gomock.Any(), "acme.example").
		Return(sampleTenant("acme.example"), nil).Times(2)

	_, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)

	svc.InvalidateHost(context.Background(), "acme.example")

	_, err = svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
}

func TestTenantUpdatedEvent_InvalidatesCachedHost(t *testing.T) {
	logger.InitLogger("")

	ctrl := gomock.NewController(t)
	store := mock_store.NewMockTenantStore(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	svc := service.NewTenantService(store, util.NewValidationUtil(), time.Minute, eventBus, false)

	var lookups atomic.Int32
	store.EXPECT().ResolveTenant(gomock.Any(), "acme.example").
		DoAndReturn(func(ctx context.Context, host string) (*model.Tenant, error) {
			lookups.Add(1)
			return sampleTenant("acme.example"), nil
		}).AnyTimes()

	_, err := svc.ResolveTenant(context.Background(), "acme.example")
	require.NoError(t, err)
	require.Equal(t, int32(1), lookups.Load())

	eventBus.Publish(ctx, util.EventTenantUpdated, "acme.example")

	// Handlers run on the bus goroutine; once the entry is gone the next
	// resolve reaches the store again.
	assert.Eventually(t, func() bool {
		_, err := svc.ResolveTenant(context.Background(), "acme.example")
		return err == nil && lookups.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}
