// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// PlanRepository defines the interface for daily plan persistence operations.
type PlanRepository interface {
	// SaveMonth persists a full month plan, replacing any existing plan for
	// the same user and month.
	SaveMonth(ctx context.Context, userID uuid.UUID, plan *entity.MonthPlan) error

	// FindMonth retrieves the saved plan for a user and month.
	// Returns (nil, nil) when no plan has been saved yet.
	FindMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthPlan, error)

	// ReplaceFutureDays overwrites the plans of the given days only,
	// leaving all other days of the month untouched. Used by redistribution,
	// which must never rewrite elapsed days.
	ReplaceFutureDays(ctx context.Context, userID uuid.UUID, year int, month time.Month, days []entity.DayPlan) error
}
