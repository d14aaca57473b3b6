// Package cache implements redis-backed caching and locking adapters.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func sampleCalendar() *entity.MonthCalendar {
	return &entity.MonthCalendar{
		Year:  2026,
		Month: time.June,
		Days: []entity.DayView{
			{
				DayNumber: 1,
				Date:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
				Limit:     decimal.NewFromInt(100),
				Spent:     decimal.RequireFromString("42.50"),
				Status:    entity.DayStatusGood,
				Categories: map[string]entity.CategoryAmounts{
					"groceries": {
						Planned: decimal.NewFromInt(60),
						Spent:   decimal.RequireFromString("42.50"),
					},
				},
			},
		},
		TotalLimit: decimal.NewFromInt(100),
		TotalSpent: decimal.RequireFromString("42.50"),
	}
}

func TestCalendarCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a calendar", func(t *testing.T) {
		client, _ := newTestRedis(t)
		cache := NewCalendarCache(client, time.Minute)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, sampleCalendar()); err != nil {
			t.Fatalf("failed to set calendar: %v", err)
		}

		found, err := cache.Get(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("failed to get calendar: %v", err)
		}
		if found == nil {
			t.Fatal("expected cached calendar, got nil")
		}
		if found.Year != 2026 || found.Month != time.June {
			t.Errorf("expected 2026-06, got %d-%d", found.Year, found.Month)
		}
		if len(found.Days) != 1 {
			t.Fatalf("expected 1 day, got %d", len(found.Days))
		}
		if !found.Days[0].Spent.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected spent 42.50, got %s", found.Days[0].Spent)
		}
		if !found.Days[0].Categories["groceries"].Planned.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected planned groceries 60, got %s", found.Days[0].Categories["groceries"].Planned)
		}
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		client, _ := newTestRedis(t)
		cache := NewCalendarCache(client, time.Minute)

		found, err := cache.Get(ctx, uuid.New(), 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil on miss, got %+v", found)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		client, _ := newTestRedis(t)
		cache := NewCalendarCache(client, time.Minute)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, sampleCalendar()); err != nil {
			t.Fatalf("failed to set calendar: %v", err)
		}
		if err := cache.Invalidate(ctx, userID, 2026, time.June); err != nil {
			t.Fatalf("failed to invalidate calendar: %v", err)
		}

		found, err := cache.Get(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Error("expected nil after invalidation")
		}
	})

	t.Run("entries expire with the configured TTL", func(t *testing.T) {
		client, mr := newTestRedis(t)
		cache := NewCalendarCache(client, time.Minute)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, sampleCalendar()); err != nil {
			t.Fatalf("failed to set calendar: %v", err)
		}
		mr.FastForward(2 * time.Minute)

		found, err := cache.Get(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Error("expected entry to expire")
		}
	})

	t.Run("entries are scoped per user and month", func(t *testing.T) {
		client, _ := newTestRedis(t)
		cache := NewCalendarCache(client, time.Minute)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, sampleCalendar()); err != nil {
			t.Fatalf("failed to set calendar: %v", err)
		}

		if found, _ := cache.Get(ctx, uuid.New(), 2026, time.June); found != nil {
			t.Error("expected miss for a different user")
		}
		if found, _ := cache.Get(ctx, userID, 2026, time.July); found != nil {
			t.Error("expected miss for a different month")
		}
	})
}
