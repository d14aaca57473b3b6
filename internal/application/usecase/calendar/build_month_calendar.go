// Package calendar contains the month calendar use cases.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/application/usecase/classification"
	"github.com/budget-planner/backend/internal/application/usecase/plan"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/threshold"
)

// BuildMonthCalendarInput represents the input for building a month calendar.
type BuildMonthCalendarInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
	// SkipCache forces a fresh build; used by redistribution, which must
	// never act on a stale calendar.
	SkipCache bool
}

// BuildMonthCalendarOutput represents the merged month calendar.
type BuildMonthCalendarOutput struct {
	Calendar entity.MonthCalendar
	Tier     entity.IncomeTier
}

// BuildMonthCalendarUseCase assembles the day-by-day budget calendar for a
// month: it loads the user's profile and saved plan (building and saving a
// fresh plan when none exists), aggregates the month's transactions, and
// merges plan and actuals.
type BuildMonthCalendarUseCase struct {
	profileRepo     adapter.ProfileRepository
	transactionRepo adapter.TransactionRepository
	planRepo        adapter.PlanRepository
	cache           adapter.CalendarCache
	table           *threshold.Table
	now             func() time.Time
}

// NewBuildMonthCalendarUseCase creates a new BuildMonthCalendarUseCase instance.
func NewBuildMonthCalendarUseCase(
	profileRepo adapter.ProfileRepository,
	transactionRepo adapter.TransactionRepository,
	planRepo adapter.PlanRepository,
	cache adapter.CalendarCache,
	table *threshold.Table,
) *BuildMonthCalendarUseCase {
	return &BuildMonthCalendarUseCase{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		planRepo:        planRepo,
		cache:           cache,
		table:           table,
		now:             time.Now,
	}
}

// Execute builds the merged calendar for the given user and month.
func (uc *BuildMonthCalendarUseCase) Execute(
	ctx context.Context,
	input BuildMonthCalendarInput,
) (*BuildMonthCalendarOutput, error) {
	if err := validateMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewCalendarError(
				domainerror.ErrCodeCalendarProfileRequired,
				"a financial profile is required before building a calendar",
				domainerror.ErrCalendarProfileRequired,
			)
		}
		return nil, fmt.Errorf("failed to load financial profile: %w", err)
	}

	tier := classification.Classify(uc.table, profile.MonthlyIncome, profile.Country, profile.Subregion)

	if uc.cache != nil && !input.SkipCache {
		cached, err := uc.cache.Get(ctx, input.UserID, input.Year, input.Month)
		if err != nil {
			slog.Warn("Calendar cache read failed", "error", err)
		} else if cached != nil {
			return &BuildMonthCalendarOutput{Calendar: *cached, Tier: tier}, nil
		}
	}

	monthPlan, err := uc.planRepo.FindMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved plan: %w", err)
	}
	if monthPlan == nil {
		built := plan.BuildMonthPlan(
			input.Year,
			input.Month,
			profile.MonthlyIncome,
			profile.FixedExpenses,
			profile.HabitWeights,
			tier,
		)
		monthPlan = &built
		if err := uc.planRepo.SaveMonth(ctx, input.UserID, monthPlan); err != nil {
			return nil, fmt.Errorf("failed to save month plan: %w", err)
		}
	}

	transactions, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	raw := make([]entity.RawTransaction, len(transactions))
	for i, tx := range transactions {
		raw[i] = entity.RawTransaction{
			Date:     tx.Date.UTC().Format(DateLayout),
			Category: tx.Category,
			Amount:   tx.Amount,
		}
	}

	actuals := AggregateSpend(raw, input.Year, input.Month)
	merged := MergeCalendar(*monthPlan, actuals, uc.now())

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, &merged); err != nil {
			slog.Warn("Calendar cache write failed", "error", err)
		}
	}

	return &BuildMonthCalendarOutput{
		Calendar: merged,
		Tier:     tier,
	}, nil
}

// validateMonth rejects out-of-range year/month pairs.
func validateMonth(year int, month time.Month) error {
	if year < 1970 || year > 9999 || month < time.January || month > time.December {
		return domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidCalendarMonth,
			"year/month out of range",
			domainerror.ErrInvalidCalendarMonth,
		)
	}
	return nil
}
