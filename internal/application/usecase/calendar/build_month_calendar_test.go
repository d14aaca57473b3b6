// Package calendar contains the month calendar use cases.
package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, tx := range f.transactions {
		if tx.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

type planKey struct {
	userID uuid.UUID
	year   int
	month  time.Month
}

type fakePlanRepo struct {
	plans     map[planKey]*entity.MonthPlan
	saveCalls int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[planKey]*entity.MonthPlan)}
}

func (f *fakePlanRepo) SaveMonth(_ context.Context, userID uuid.UUID, plan *entity.MonthPlan) error {
	f.saveCalls++
	f.plans[planKey{userID, plan.Year, plan.Month}] = plan
	return nil
}

func (f *fakePlanRepo) FindMonth(
	_ context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) (*entity.MonthPlan, error) {
	return f.plans[planKey{userID, year, month}], nil
}

func (f *fakePlanRepo) ReplaceFutureDays(
	_ context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
	days []entity.DayPlan,
) error {
	plan, ok := f.plans[planKey{userID, year, month}]
	if !ok {
		return errors.New("no plan saved for month")
	}
	byDay := make(map[int]entity.DayPlan, len(days))
	for _, day := range days {
		byDay[day.DayNumber] = day
	}
	for i, day := range plan.Days {
		if revised, ok := byDay[day.DayNumber]; ok {
			plan.Days[i] = revised
		}
	}
	return nil
}

type fakeCalendarCache struct {
	entries   map[planKey]*entity.MonthCalendar
	getCalls  int
	setCalls  int
	dropCalls int
}

func newFakeCalendarCache() *fakeCalendarCache {
	return &fakeCalendarCache{entries: make(map[planKey]*entity.MonthCalendar)}
}

func (f *fakeCalendarCache) Get(
	_ context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) (*entity.MonthCalendar, error) {
	f.getCalls++
	return f.entries[planKey{userID, year, month}], nil
}

func (f *fakeCalendarCache) Set(_ context.Context, userID uuid.UUID, calendar *entity.MonthCalendar) error {
	f.setCalls++
	f.entries[planKey{userID, calendar.Year, calendar.Month}] = calendar
	return nil
}

func (f *fakeCalendarCache) Invalidate(_ context.Context, userID uuid.UUID, year int, month time.Month) error {
	f.dropCalls++
	delete(f.entries, planKey{userID, year, month})
	return nil
}

func testProfile(userID uuid.UUID) *entity.FinancialProfile {
	return &entity.FinancialProfile{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyIncome: decimal.NewFromInt(3100),
		Country:       "US",
		FixedExpenses: map[string]decimal.Decimal{"rent": decimal.NewFromInt(100)},
		HabitWeights: map[string]decimal.Decimal{
			"groceries": decimal.NewFromInt(3),
			"other":     decimal.NewFromInt(2),
		},
	}
}

func TestBuildMonthCalendarUseCase_Execute(t *testing.T) {
	table, err := threshold.Load()
	if err != nil {
		t.Fatalf("failed to load threshold table: %v", err)
	}
	userID := uuid.New()
	fixedNow := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)

	newUseCase := func(profileRepo *fakeProfileRepo, txRepo *fakeTransactionRepo, planRepo *fakePlanRepo, cache *fakeCalendarCache) *BuildMonthCalendarUseCase {
		uc := NewBuildMonthCalendarUseCase(profileRepo, txRepo, planRepo, cache, table)
		uc.now = func() time.Time { return fixedNow }
		return uc
	}

	t.Run("builds and saves a plan on first request", func(t *testing.T) {
		planRepo := newFakePlanRepo()
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, &fakeTransactionRepo{}, planRepo, newFakeCalendarCache())

		output, err := uc.Execute(context.Background(), BuildMonthCalendarInput{
			UserID: userID,
			Year:   2026,
			Month:  time.June,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Calendar.Days) != 30 {
			t.Errorf("expected 30 days, got %d", len(output.Calendar.Days))
		}
		if output.Tier != entity.IncomeTierLowerMiddle {
			t.Errorf("expected lower_middle tier for 3100/month in US, got %s", output.Tier)
		}
		if planRepo.saveCalls != 1 {
			t.Errorf("expected plan to be saved once, got %d saves", planRepo.saveCalls)
		}
	})

	t.Run("reuses the saved plan on later requests", func(t *testing.T) {
		planRepo := newFakePlanRepo()
		cache := newFakeCalendarCache()
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, &fakeTransactionRepo{}, planRepo, cache)

		input := BuildMonthCalendarInput{UserID: userID, Year: 2026, Month: time.June, SkipCache: true}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if planRepo.saveCalls != 1 {
			t.Errorf("expected plan saved once across requests, got %d saves", planRepo.saveCalls)
		}
	})

	t.Run("merges stored transactions into the calendar", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			{
				ID:       uuid.New(),
				UserID:   userID,
				Date:     time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
				Category: "groceries",
				Amount:   decimal.RequireFromString("42.50"),
			},
		}}
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, txRepo, newFakePlanRepo(), newFakeCalendarCache())

		output, err := uc.Execute(context.Background(), BuildMonthCalendarInput{
			UserID: userID,
			Year:   2026,
			Month:  time.June,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		day3 := output.Calendar.Days[2]
		if !day3.Spent.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected day 3 spent 42.50, got %s", day3.Spent)
		}
	})

	t.Run("serves a cached calendar without rebuilding", func(t *testing.T) {
		planRepo := newFakePlanRepo()
		cache := newFakeCalendarCache()
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, &fakeTransactionRepo{}, planRepo, cache)

		input := BuildMonthCalendarInput{UserID: userID, Year: 2026, Month: time.June}
		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.setCalls != 1 {
			t.Errorf("expected one cache write, got %d", cache.setCalls)
		}
		if second.Tier != first.Tier {
			t.Errorf("cache hit must still report the tier, got %s", second.Tier)
		}
		if len(second.Calendar.Days) != len(first.Calendar.Days) {
			t.Errorf("cached calendar differs from built one")
		}
	})

	t.Run("skip cache forces a fresh build", func(t *testing.T) {
		cache := newFakeCalendarCache()
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, &fakeTransactionRepo{}, newFakePlanRepo(), cache)

		input := BuildMonthCalendarInput{UserID: userID, Year: 2026, Month: time.June, SkipCache: true}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.getCalls != 0 {
			t.Errorf("expected no cache reads with SkipCache, got %d", cache.getCalls)
		}
	})

	t.Run("missing profile is a precondition failure", func(t *testing.T) {
		uc := newUseCase(&fakeProfileRepo{}, &fakeTransactionRepo{}, newFakePlanRepo(), newFakeCalendarCache())

		_, err := uc.Execute(context.Background(), BuildMonthCalendarInput{
			UserID: userID,
			Year:   2026,
			Month:  time.June,
		})
		var calendarErr *domainerror.CalendarError
		if !errors.As(err, &calendarErr) {
			t.Fatalf("expected CalendarError, got %v", err)
		}
		if calendarErr.Code != domainerror.ErrCodeCalendarProfileRequired {
			t.Errorf("expected profile-required code, got %s", calendarErr.Code)
		}
	})

	t.Run("rejects out-of-range months", func(t *testing.T) {
		uc := newUseCase(&fakeProfileRepo{profile: testProfile(userID)}, &fakeTransactionRepo{}, newFakePlanRepo(), newFakeCalendarCache())

		_, err := uc.Execute(context.Background(), BuildMonthCalendarInput{
			UserID: userID,
			Year:   2026,
			Month:  time.Month(13),
		})
		var calendarErr *domainerror.CalendarError
		if !errors.As(err, &calendarErr) {
			t.Fatalf("expected CalendarError, got %v", err)
		}
		if calendarErr.Code != domainerror.ErrCodeInvalidCalendarMonth {
			t.Errorf("expected invalid-month code, got %s", calendarErr.Code)
		}
	})
}
