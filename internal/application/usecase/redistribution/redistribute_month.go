// Package redistribution contains the budget redistribution engine and its
// use cases.
package redistribution

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// RedistributeMonthInput represents the input for redistributing a month's budget.
type RedistributeMonthInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// RedistributeMonthOutput represents the result of a redistribution run.
type RedistributeMonthOutput struct {
	NewPlans          []entity.DayPlan
	VarianceApplied   decimal.Decimal
	FlaggedOverBudget bool
}

// RedistributeMonthUseCase applies the redistribution engine to a user's
// month: it rebuilds the calendar from fresh data, nets out variance already
// applied by earlier runs, persists the revised future plans and appends a
// redistribution history record.
//
// Runs for the same user and month are serialized through a MonthLock; a
// concurrent second request is rejected, not queued.
type RedistributeMonthUseCase struct {
	buildCalendar      *calendar.BuildMonthCalendarUseCase
	planRepo           adapter.PlanRepository
	redistributionRepo adapter.RedistributionRepository
	lock               adapter.MonthLock
	cache              adapter.CalendarCache
	now                func() time.Time
}

// NewRedistributeMonthUseCase creates a new RedistributeMonthUseCase instance.
func NewRedistributeMonthUseCase(
	buildCalendar *calendar.BuildMonthCalendarUseCase,
	planRepo adapter.PlanRepository,
	redistributionRepo adapter.RedistributionRepository,
	lock adapter.MonthLock,
	cache adapter.CalendarCache,
) *RedistributeMonthUseCase {
	return &RedistributeMonthUseCase{
		buildCalendar:      buildCalendar,
		planRepo:           planRepo,
		redistributionRepo: redistributionRepo,
		lock:               lock,
		cache:              cache,
		now:                time.Now,
	}
}

// Execute runs one redistribution for the given user and month.
func (uc *RedistributeMonthUseCase) Execute(
	ctx context.Context,
	input RedistributeMonthInput,
) (*RedistributeMonthOutput, error) {
	acquired, err := uc.lock.Acquire(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire redistribution lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeRedistributionInProgress,
			"a redistribution for this month is already running",
			domainerror.ErrRedistributionInProgress,
		)
	}
	defer func() {
		if err := uc.lock.Release(ctx, input.UserID, input.Year, input.Month); err != nil {
			slog.Warn("Failed to release redistribution lock", "error", err)
		}
	}()

	built, err := uc.buildCalendar.Execute(ctx, calendar.BuildMonthCalendarInput{
		UserID:    input.UserID,
		Year:      input.Year,
		Month:     input.Month,
		SkipCache: true,
	})
	if err != nil {
		return nil, err
	}

	records, err := uc.redistributionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load redistribution history: %w", err)
	}
	alreadyApplied := decimal.Zero
	for _, record := range records {
		alreadyApplied = alreadyApplied.Add(record.Variance)
	}

	result := Redistribute(built.Calendar.Days, uc.now(), alreadyApplied)
	if len(result.NewPlans) == 0 {
		return &RedistributeMonthOutput{
			NewPlans:        []entity.DayPlan{},
			VarianceApplied: decimal.Zero,
		}, nil
	}

	if err := uc.planRepo.ReplaceFutureDays(ctx, input.UserID, input.Year, input.Month, result.NewPlans); err != nil {
		return nil, fmt.Errorf("failed to persist redistributed plans: %w", err)
	}

	record := entity.NewRedistributionRecord(
		input.UserID,
		input.Year,
		input.Month,
		result.VarianceApplied,
		result.FlaggedOverBudget,
		affectedCategories(result.NewPlans),
	)
	if err := uc.redistributionRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append redistribution record: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID, input.Year, input.Month); err != nil {
			slog.Warn("Failed to invalidate calendar cache", "error", err)
		}
	}

	slog.Info("Redistribution applied",
		"user_id", input.UserID,
		"year", input.Year,
		"month", int(input.Month),
		"variance", result.VarianceApplied.String(),
		"over_budget", result.FlaggedOverBudget,
	)

	return &RedistributeMonthOutput{
		NewPlans:          result.NewPlans,
		VarianceApplied:   result.VarianceApplied,
		FlaggedOverBudget: result.FlaggedOverBudget,
	}, nil
}

// affectedCategories returns the sorted union of category names across the
// revised plans.
func affectedCategories(plans []entity.DayPlan) []string {
	seen := make(map[string]struct{})
	for _, dayPlan := range plans {
		for category := range dayPlan.Categories {
			seen[category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
