// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MonthLock serializes redistribution runs per (user, year, month).
// Two concurrent redistribution requests for the same month must not race;
// the second caller is rejected rather than queued.
type MonthLock interface {
	// Acquire attempts to take the lock. Returns false when another holder
	// already owns it.
	Acquire(ctx context.Context, userID uuid.UUID, year int, month time.Month) (bool, error)

	// Release frees the lock.
	Release(ctx context.Context, userID uuid.UUID, year int, month time.Month) error
}
