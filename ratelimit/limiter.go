// Package ratelimit gates mutating operations with a sliding-window counter
// over append-only attempt records.
package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/metrics"
)

// Store persists the attempt window. Counting trims expired records as a
// side effect.
type Store interface {
	Append(ctx context.Context, principalID, operation string, ts time.Time, window time.Duration) error
	Count(ctx context.Context, principalID, operation string, since time.Time) (int64, error)
}

// Policy decides what happens when the store itself is unavailable.
//
// FailOpen prefers availability: an unreachable store never blocks a
// request. That is the right trade for a throttle, and the wrong one for
// anything authorization-adjacent, which should use FailClosed.
type Policy int

const (
	FailOpen Policy = iota
	FailClosed
)

// Limiter counts attempts for a (principal, operation) pair within a
// trailing window and denies once the ceiling is reached.
type Limiter struct {
	store  Store
	window time.Duration
	max    int
	policy Policy
	clock  func() time.Time
}

func NewLimiter(store Store, window time.Duration, max int, policy Policy) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		max:    max,
		policy: policy,
		clock:  time.Now,
	}
}

// Window exposes the configured window for Retry-After style headers.
func (l *Limiter) Window() time.Duration { return l.window }

// Max exposes the configured ceiling.
func (l *Limiter) Max() int { return l.max }

// Allow reports whether the operation may proceed, recording the attempt
// when it does. Denied attempts are not recorded, so a throttled caller
// does not push its own window further out.
func (l *Limiter) Allow(ctx context.Context, principalID, operation string) (bool, error) {
	now := l.clock()
	since := now.Add(-l.window)

	count, err := l.store.Count(ctx, principalID, operation, since)
	if err != nil {
		return l.onStoreError("count", principalID, operation, err)
	}

	if count >= int64(l.max) {
		metrics.RecordRateLimited(operation)
		logger.Warn("Rate limit exceeded",
			zap.String("principalID", principalID),
			zap.String("operation", operation),
			zap.Int64("count", count),
			zap.Int("limit", l.max))
		return false, nil
	}

	if err := l.store.Append(ctx, principalID, operation, now, l.window); err != nil {
		return l.onStoreError("append", principalID, operation, err)
	}
	return true, nil
}

func (l *Limiter) onStoreError(op, principalID, operation string, err error) (bool, error) {
	if l.policy == FailOpen {
		logger.Warn("Rate limit store unavailable, failing open",
			zap.String("op", op),
			zap.String("principalID", principalID),
			zap.String("operation", operation),
			zap.Error(err))
		return true, nil
	}
	logger.Error("Rate limit store unavailable, failing closed",
		zap.String("op", op),
		zap.String("principalID", principalID),
		zap.String("operation", operation),
		zap.Error(err))
	return false, err
}
