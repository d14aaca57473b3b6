// Package cache implements redis-backed caching and locking adapters.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-planner/backend/internal/application/adapter"
)

// redisMonthLock implements the adapter.MonthLock interface with a SET NX
// key per (user, year, month). The TTL guards against a crashed holder
// leaving the month locked forever.
type redisMonthLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMonthLock creates a new redis-backed month lock.
func NewMonthLock(client *redis.Client, ttl time.Duration) adapter.MonthLock {
	return &redisMonthLock{
		client: client,
		ttl:    ttl,
	}
}

func lockKey(userID uuid.UUID, year int, month time.Month) string {
	return fmt.Sprintf("redistribution-lock:%s:%04d-%02d", userID, year, int(month))
}

// Acquire attempts to take the lock.
func (l *redisMonthLock) Acquire(ctx context.Context, userID uuid.UUID, year int, month time.Month) (bool, error) {
	acquired, err := l.client.SetNX(ctx, lockKey(userID, year, month), "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire month lock: %w", err)
	}
	return acquired, nil
}

// Release frees the lock.
func (l *redisMonthLock) Release(ctx context.Context, userID uuid.UUID, year int, month time.Month) error {
	if err := l.client.Del(ctx, lockKey(userID, year, month)).Err(); err != nil {
		return fmt.Errorf("failed to release month lock: %w", err)
	}
	return nil
}
