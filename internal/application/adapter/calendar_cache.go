// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CalendarCache caches merged month calendars. Implementations must treat
// the cache as best-effort: a cache failure never fails the read path.
type CalendarCache interface {
	// Get retrieves a cached calendar. Returns (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthCalendar, error)

	// Set stores a calendar.
	Set(ctx context.Context, userID uuid.UUID, calendar *entity.MonthCalendar) error

	// Invalidate drops the cached calendar for a user and month.
	Invalidate(ctx context.Context, userID uuid.UUID, year int, month time.Month) error
}
