package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headwall-io/gatehouse/cache"
)

func TestGetOrCompute_ServesFromCacheWithinTTL(t *testing.T) {
	c := cache.New[string]()
	ctx := context.Background()

	var calls int32
	compute := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	v, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.GetOrCompute(ctx, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second call must be served from cache")
}

func TestGetOrCompute_RecomputesAfterExpiry(t *testing.T) {
	c := cache.New[int]()
	ctx := context.Background()

	now := time.Now()
	c.SetClock(func() time.Time { return now })

	var calls int32
	compute := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v, err := c.GetOrCompute(ctx, "k", 10*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Still fresh one second before expiry.
	now = now.Add(9 * time.Second)
	v, err = c.GetOrCompute(ctx, "k", 10*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Stale entry present but expired: a fresh computation must run.
	now = now.Add(2 * time.Second)
	v, err = c.GetOrCompute(ctx, "k", 10*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetOrCompute_DeduplicatesConcurrentMisses(t *testing.T) {
	c := cache.New[string]()
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	compute := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.GetOrCompute(ctx, "k", time.Minute, compute)
		}(i)
	}

	// Let every caller reach the miss path before the computation finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent misses must share one computation")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

func TestGetOrCompute_ErrorIsNotCached(t *testing.T) {
	c := cache.New[string]()
	ctx := context.Background()

	var calls int32
	boom := errors.New("store down")
	compute := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", boom
		}
		return "recovered", nil
	}

	_, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
	require.ErrorIs(t, err, boom)

	v, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestGetOrCompute_SurvivesCallerCancellation(t *testing.T) {
	c := cache.New[string]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := c.GetOrCompute(ctx, "k", time.Minute, func(ctx context.Context) (string, error) {
		// Population is idempotent and must finish even when the caller
		// has gone away.
		require.NoError(t, ctx.Err())
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestInvalidateAndClear(t *testing.T) {
	c := cache.New[string]()

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)
	assert.Equal(t, 2, c.Len())

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestInvalidatePrefix(t *testing.T) {
	c := cache.New[string]()

	c.Set("perm:r1:u1", "a", time.Minute)
	c.Set("perm:r1:u2", "b", time.Minute)
	c.Set("perm:r2:u1", "c", time.Minute)

	c.InvalidatePrefix("perm:r1:")

	_, ok := c.Get("perm:r1:u1")
	assert.False(t, ok)
	_, ok = c.Get("perm:r1:u2")
	assert.False(t, ok)
	_, ok = c.Get("perm:r2:u1")
	assert.True(t, ok)
}
