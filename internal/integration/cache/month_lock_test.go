// Package cache implements redis-backed caching and locking adapters.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMonthLock(t *testing.T) {
	ctx := context.Background()

	t.Run("only the first acquire succeeds", func(t *testing.T) {
		client, _ := newTestRedis(t)
		lock := NewMonthLock(client, time.Minute)
		userID := uuid.New()

		acquired, err := lock.Acquire(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("failed to acquire lock: %v", err)
		}
		if !acquired {
			t.Fatal("expected first acquire to succeed")
		}

		acquired, err = lock.Acquire(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acquired {
			t.Error("expected second acquire to fail while held")
		}
	})

	t.Run("release frees the lock", func(t *testing.T) {
		client, _ := newTestRedis(t)
		lock := NewMonthLock(client, time.Minute)
		userID := uuid.New()

		if _, err := lock.Acquire(ctx, userID, 2026, time.June); err != nil {
			t.Fatalf("failed to acquire lock: %v", err)
		}
		if err := lock.Release(ctx, userID, 2026, time.June); err != nil {
			t.Fatalf("failed to release lock: %v", err)
		}

		acquired, err := lock.Acquire(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Error("expected acquire to succeed after release")
		}
	})

	t.Run("locks are scoped per user and month", func(t *testing.T) {
		client, _ := newTestRedis(t)
		lock := NewMonthLock(client, time.Minute)
		userID := uuid.New()

		if _, err := lock.Acquire(ctx, userID, 2026, time.June); err != nil {
			t.Fatalf("failed to acquire lock: %v", err)
		}

		if acquired, _ := lock.Acquire(ctx, uuid.New(), 2026, time.June); !acquired {
			t.Error("expected a different user to acquire independently")
		}
		if acquired, _ := lock.Acquire(ctx, userID, 2026, time.July); !acquired {
			t.Error("expected a different month to acquire independently")
		}
	})

	t.Run("a stale lock expires", func(t *testing.T) {
		client, mr := newTestRedis(t)
		lock := NewMonthLock(client, time.Minute)
		userID := uuid.New()

		if _, err := lock.Acquire(ctx, userID, 2026, time.June); err != nil {
			t.Fatalf("failed to acquire lock: %v", err)
		}
		mr.FastForward(2 * time.Minute)

		acquired, err := lock.Acquire(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Error("expected lock to expire after its TTL")
		}
	})
}
