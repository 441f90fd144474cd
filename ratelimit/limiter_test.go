// ratelimit/limiter_test.go
package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/ratelimit"
)

// memoryStore keeps attempt timestamps in memory. Count trims expired
// records the way the redis store does.
type memoryStore struct {
	mu      sync.Mutex
	records map[string][]time.Time
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string][]time.Time)}
}

func (s *memoryStore) key(principalID, operation string) string {
	return principalID + ":" + operation
}

func (s *memoryStore) Append(ctx context.Context, principalID, operation string, ts time.Time, window time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	k := s.key(principalID, operation)
	s.records[k] = append(s.records[k], ts)
	return nil
}

func (s *memoryStore) Count(ctx context.Context, principalID, operation string, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	k := s.key(principalID, operation)
	kept := s.records[k][:0]
	for _, ts := range s.records[k] {
		if !ts.Before(since) {
			kept = append(kept, ts)
		}
	}
	s.records[k] = kept
	return int64(len(kept)), nil
}

func (s *memoryStore) recorded(principalID, operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[s.key(principalID, operation)])
}

func TestAllow_DeniesOnceCeilingReached(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	limiter := ratelimit.NewLimiter(store, time.Minute, 3, ratelimit.FailOpen)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "u1", "create_contact")
		require.NoError(t, err)
		require.True(t, allowed, "attempt %d should pass", i+1)
	}

	allowed, err := limiter.Allow(ctx, "u1", "create_contact")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllow_DeniedAttemptsNotRecorded(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	limiter := ratelimit.NewLimiter(store, time.Minute, 2, ratelimit.FailOpen)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		limiter.Allow(ctx, "u1", "create_contact")
	}

	assert.Equal(t, 2, store.recorded("u1", "create_contact"),
		"throttled attempts must not extend the window")
}

func TestAllow_WindowSlides(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	limiter := ratelimit.NewLimiter(store, time.Minute, 2, ratelimit.FailOpen)

	now := time.Now()
	limiter.SetClock(func() time.Time { return now })

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "u1", "create_contact")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow(ctx, "u1", "create_contact")
	require.False(t, allowed)

	// Once the earlier attempts age out, capacity returns.
	now = now.Add(time.Minute + time.Second)
	allowed, err := limiter.Allow(ctx, "u1", "create_contact")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	limiter := ratelimit.NewLimiter(store, time.Minute, 1, ratelimit.FailOpen)

	ctx := context.Background()
	allowed, err := limiter.Allow(ctx, "u1", "create_contact")
	require.NoError(t, err)
	require.True(t, allowed)

	// Another principal, and another operation for the same principal,
	// each have their own window.
	allowed, err = limiter.Allow(ctx, "u2", "create_contact")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "u1", "create_lead")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_FailOpenOnStoreFailure(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	store.err = errors.New("redis unreachable")
	limiter := ratelimit.NewLimiter(store, time.Minute, 1, ratelimit.FailOpen)

	allowed, err := limiter.Allow(context.Background(), "u1", "create_contact")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_FailClosedOnStoreFailure(t *testing.T) {
	logger.InitLogger("")
	store := newMemoryStore()
	store.err = errors.New("redis unreachable")
	limiter := ratelimit.NewLimiter(store, time.Minute, 1, ratelimit.FailClosed)

	allowed, err := limiter.Allow(context.Background(), "u1", "create_contact")
	require.Error(t, err)
	assert.False(t, allowed)
}
