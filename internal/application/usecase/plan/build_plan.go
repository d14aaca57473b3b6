// Package plan contains the daily budget plan builder.
package plan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// BuildMonthPlan distributes a user's disposable income flatly across every
// day of the target month.
//
// Each variable category receives a monthly allocation proportional to its
// habit weight, then an equal per-day slice of that allocation. Day-of-week
// weighting is deliberately left to redistribution rather than baked into
// the initial plan. When the caller supplies no habit weights, the income
// tier selects a default weight profile.
//
// When fixed expenses exceed monthly income, the plan is built with all-zero
// variable allocations and NegativeDisposable set; that is a valid state for
// the caller to display, not an error.
func BuildMonthPlan(
	year int,
	month time.Month,
	monthlyIncome decimal.Decimal,
	fixedExpenses map[string]decimal.Decimal,
	habitWeights map[string]decimal.Decimal,
	tier entity.IncomeTier,
) entity.MonthPlan {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	totalFixed := decimal.Zero
	for _, amount := range fixedExpenses {
		totalFixed = totalFixed.Add(amount)
	}
	disposable := monthlyIncome.Sub(totalFixed)

	weights := habitWeights
	if len(weights) == 0 {
		weights = DefaultHabitWeights(tier)
	}

	totalWeight := decimal.Zero
	for _, weight := range weights {
		totalWeight = totalWeight.Add(weight)
	}

	negative := disposable.IsNegative()
	days := decimal.NewFromInt(int64(daysInMonth))

	// Each category's monthly allocation is rounded to cents and then cut
	// along its cumulative running total, so per-day rounding residue lands
	// on single days instead of compounding. The day slices of a category
	// always sum back to its monthly allocation exactly.
	slices := make(map[string][]decimal.Decimal, len(weights))
	for category, weight := range weights {
		amounts := make([]decimal.Decimal, daysInMonth)
		if negative || totalWeight.IsZero() {
			for i := range amounts {
				amounts[i] = decimal.Zero
			}
			slices[category] = amounts
			continue
		}
		allocation := disposable.Mul(weight).Div(totalWeight).Round(2)
		previous := decimal.Zero
		for day := 1; day <= daysInMonth; day++ {
			cumulative := allocation.Mul(decimal.NewFromInt(int64(day))).DivRound(days, 2)
			amounts[day-1] = cumulative.Sub(previous)
			previous = cumulative
		}
		slices[category] = amounts
	}

	dayPlans := make([]entity.DayPlan, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		categories := make(map[string]decimal.Decimal, len(slices))
		total := decimal.Zero
		for category, amounts := range slices {
			amount := amounts[day-1]
			categories[category] = amount
			total = total.Add(amount)
		}
		dayPlans = append(dayPlans, entity.DayPlan{
			DayNumber:  day,
			Date:       time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			TotalLimit: total,
			Categories: categories,
		})
	}

	return entity.MonthPlan{
		Year:               year,
		Month:              month,
		Days:               dayPlans,
		DisposableIncome:   disposable,
		NegativeDisposable: negative,
	}
}
