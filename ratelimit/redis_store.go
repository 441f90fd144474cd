package ratelimit

import (
	"context"
	"time"

	"github.com/headwall-io/gatehouse/db"
)

// RedisStore persists attempt windows in Redis sorted sets, one set per
// (principal, operation) pair.
type RedisStore struct{}

func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) Append(ctx context.Context, principalID, operation string, ts time.Time, window time.Duration) error {
	return db.AppendRateRecord(ctx, principalID, operation, ts, window)
}

func (s *RedisStore) Count(ctx context.Context, principalID, operation string, since time.Time) (int64, error) {
	return db.CountRateRecords(ctx, principalID, operation, since)
}
