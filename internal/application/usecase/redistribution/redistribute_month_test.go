// Package redistribution contains the budget redistribution engine and its
// use cases.
package redistribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/threshold"
)

type fakeProfileRepo struct {
	profile *entity.FinancialProfile
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *entity.FinancialProfile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, _ uuid.UUID) (*entity.FinancialProfile, error) {
	if f.profile == nil {
		return nil, domainerror.ErrProfileNotFound
	}
	return f.profile, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindByUserAndMonth(
	_ context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Date.Year() == year && tx.Date.Month() == month {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakePlanRepo struct {
	plan         *entity.MonthPlan
	replacedDays []entity.DayPlan
}

func (f *fakePlanRepo) SaveMonth(_ context.Context, _ uuid.UUID, plan *entity.MonthPlan) error {
	f.plan = plan
	return nil
}

func (f *fakePlanRepo) FindMonth(_ context.Context, _ uuid.UUID, _ int, _ time.Month) (*entity.MonthPlan, error) {
	return f.plan, nil
}

func (f *fakePlanRepo) ReplaceFutureDays(
	_ context.Context,
	_ uuid.UUID,
	_ int,
	_ time.Month,
	days []entity.DayPlan,
) error {
	f.replacedDays = days
	return nil
}

type fakeRedistributionRepo struct {
	records []*entity.RedistributionRecord
}

func (f *fakeRedistributionRepo) Append(_ context.Context, record *entity.RedistributionRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRedistributionRepo) FindByUserAndMonth(
	_ context.Context,
	_ uuid.UUID,
	_ int,
	_ time.Month,
) ([]*entity.RedistributionRecord, error) {
	return f.records, nil
}

type fakeMonthLock struct {
	held     bool
	acquires int
	releases int
}

func (f *fakeMonthLock) Acquire(_ context.Context, _ uuid.UUID, _ int, _ time.Month) (bool, error) {
	f.acquires++
	if f.held {
		return false, nil
	}
	f.held = true
	return true, nil
}

func (f *fakeMonthLock) Release(_ context.Context, _ uuid.UUID, _ int, _ time.Month) error {
	f.releases++
	f.held = false
	return nil
}

type fakeCalendarCache struct {
	invalidations int
}

func (f *fakeCalendarCache) Get(_ context.Context, _ uuid.UUID, _ int, _ time.Month) (*entity.MonthCalendar, error) {
	return nil, nil
}

func (f *fakeCalendarCache) Set(_ context.Context, _ uuid.UUID, _ *entity.MonthCalendar) error {
	return nil
}

func (f *fakeCalendarCache) Invalidate(_ context.Context, _ uuid.UUID, _ int, _ time.Month) error {
	f.invalidations++
	return nil
}

// fixture wires a redistribution use case over an already-elapsed month so
// the engine's own clock decides which days count as future.
type fixture struct {
	uc       *RedistributeMonthUseCase
	planRepo *fakePlanRepo
	history  *fakeRedistributionRepo
	lock     *fakeMonthLock
	cache    *fakeCalendarCache
	userID   uuid.UUID
}

func newFixture(t *testing.T, spentDays int, dailySpend int64) *fixture {
	t.Helper()

	table, err := threshold.Load()
	if err != nil {
		t.Fatalf("failed to load threshold table: %v", err)
	}
	userID := uuid.New()

	// 3100 income, 100 fixed, weights 3:2 gives a flat 100/day June plan.
	profileRepo := &fakeProfileRepo{profile: &entity.FinancialProfile{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyIncome: decimal.NewFromInt(3100),
		Country:       "US",
		FixedExpenses: map[string]decimal.Decimal{"rent": decimal.NewFromInt(100)},
		HabitWeights: map[string]decimal.Decimal{
			"groceries": decimal.NewFromInt(3),
			"other":     decimal.NewFromInt(2),
		},
	}}

	txRepo := &fakeTransactionRepo{}
	for day := 1; day <= spentDays; day++ {
		txRepo.transactions = append(txRepo.transactions, &entity.Transaction{
			ID:       uuid.New(),
			UserID:   userID,
			Date:     time.Date(2020, time.June, day, 0, 0, 0, 0, time.UTC),
			Category: "groceries",
			Amount:   decimal.NewFromInt(dailySpend),
		})
	}

	planRepo := &fakePlanRepo{}
	history := &fakeRedistributionRepo{}
	lock := &fakeMonthLock{}
	cache := &fakeCalendarCache{}

	buildCalendar := calendar.NewBuildMonthCalendarUseCase(profileRepo, txRepo, planRepo, nil, table)
	uc := NewRedistributeMonthUseCase(buildCalendar, planRepo, history, lock, cache)
	uc.now = func() time.Time {
		return time.Date(2020, time.June, 10, 15, 0, 0, 0, time.UTC)
	}

	return &fixture{
		uc:       uc,
		planRepo: planRepo,
		history:  history,
		lock:     lock,
		cache:    cache,
		userID:   userID,
	}
}

func TestRedistributeMonthUseCase_Execute(t *testing.T) {
	input := func(f *fixture) RedistributeMonthInput {
		return RedistributeMonthInput{UserID: f.userID, Year: 2020, Month: time.June}
	}

	t.Run("applies the deficit and records history", func(t *testing.T) {
		f := newFixture(t, 10, 120)

		output, err := f.uc.Execute(context.Background(), input(f))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.VarianceApplied.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected variance -200, got %s", output.VarianceApplied)
		}
		if len(output.NewPlans) != 20 {
			t.Fatalf("expected 20 revised days, got %d", len(output.NewPlans))
		}
		for _, plan := range output.NewPlans {
			if !plan.TotalLimit.Equal(decimal.NewFromInt(90)) {
				t.Fatalf("day %d: expected limit 90, got %s", plan.DayNumber, plan.TotalLimit)
			}
		}
		if len(f.planRepo.replacedDays) != 20 {
			t.Errorf("expected 20 days persisted, got %d", len(f.planRepo.replacedDays))
		}
		if len(f.history.records) != 1 {
			t.Fatalf("expected 1 history record, got %d", len(f.history.records))
		}
		if !f.history.records[0].Variance.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected recorded variance -200, got %s", f.history.records[0].Variance)
		}
		if f.cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", f.cache.invalidations)
		}
		if f.lock.releases != 1 {
			t.Errorf("expected lock released, got %d releases", f.lock.releases)
		}
	})

	t.Run("a second run with unchanged spend is a no-op", func(t *testing.T) {
		f := newFixture(t, 10, 120)

		if _, err := f.uc.Execute(context.Background(), input(f)); err != nil {
			t.Fatalf("unexpected error on first run: %v", err)
		}
		output, err := f.uc.Execute(context.Background(), input(f))
		if err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}

		if len(output.NewPlans) != 0 {
			t.Errorf("expected no-op second run, got %d revised days", len(output.NewPlans))
		}
		if !output.VarianceApplied.IsZero() {
			t.Errorf("expected zero variance, got %s", output.VarianceApplied)
		}
		if len(f.history.records) != 1 {
			t.Errorf("no-op run must not append history, got %d records", len(f.history.records))
		}
	})

	t.Run("balanced spend is a no-op with no history record", func(t *testing.T) {
		f := newFixture(t, 10, 100)

		output, err := f.uc.Execute(context.Background(), input(f))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.NewPlans) != 0 {
			t.Errorf("expected no revised days, got %d", len(output.NewPlans))
		}
		if len(f.history.records) != 0 {
			t.Errorf("expected no history records, got %d", len(f.history.records))
		}
	})

	t.Run("a concurrent run is rejected", func(t *testing.T) {
		f := newFixture(t, 10, 120)
		f.lock.held = true

		_, err := f.uc.Execute(context.Background(), input(f))

		var calendarErr *domainerror.CalendarError
		if !errors.As(err, &calendarErr) {
			t.Fatalf("expected CalendarError, got %v", err)
		}
		if calendarErr.Code != domainerror.ErrCodeRedistributionInProgress {
			t.Errorf("expected in-progress code, got %s", calendarErr.Code)
		}
		if f.lock.releases != 0 {
			t.Errorf("rejected run must not release a lock it does not hold, got %d releases", f.lock.releases)
		}
	})
}
