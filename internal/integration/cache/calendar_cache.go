// Package cache implements redis-backed caching and locking adapters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// redisCalendarCache implements the adapter.CalendarCache interface.
type redisCalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCalendarCache creates a new redis-backed calendar cache.
func NewCalendarCache(client *redis.Client, ttl time.Duration) adapter.CalendarCache {
	return &redisCalendarCache{
		client: client,
		ttl:    ttl,
	}
}

func calendarKey(userID uuid.UUID, year int, month time.Month) string {
	return fmt.Sprintf("calendar:%s:%04d-%02d", userID, year, int(month))
}

// Get retrieves a cached calendar. Returns (nil, nil) on a miss.
func (c *redisCalendarCache) Get(
	ctx context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) (*entity.MonthCalendar, error) {
	payload, err := c.client.Get(ctx, calendarKey(userID, year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read calendar cache: %w", err)
	}

	var calendar entity.MonthCalendar
	if err := json.Unmarshal(payload, &calendar); err != nil {
		return nil, fmt.Errorf("failed to decode cached calendar: %w", err)
	}
	return &calendar, nil
}

// Set stores a calendar with the configured TTL.
func (c *redisCalendarCache) Set(ctx context.Context, userID uuid.UUID, calendar *entity.MonthCalendar) error {
	payload, err := json.Marshal(calendar)
	if err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	key := calendarKey(userID, calendar.Year, calendar.Month)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write calendar cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached calendar for a user and month.
func (c *redisCalendarCache) Invalidate(ctx context.Context, userID uuid.UUID, year int, month time.Month) error {
	if err := c.client.Del(ctx, calendarKey(userID, year, month)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate calendar cache: %w", err)
	}
	return nil
}
