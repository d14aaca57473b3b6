// Package redistribution contains the budget redistribution engine and its
// use cases.
package redistribution

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// Result holds the revised plans produced by a redistribution run.
// NewPlans covers days strictly after today only; elapsed days are never
// rewritten.
type Result struct {
	NewPlans          []entity.DayPlan
	VarianceApplied   decimal.Decimal
	FlaggedOverBudget bool
}

// Redistribute reallocates the variance accumulated on elapsed days across
// the remaining days of the month.
//
// Variance is the difference between planned limits and actual spend on
// elapsed days, net of variance already applied by earlier runs for the
// same month (which makes a repeated run with unchanged spend a no-op).
// The net variance is spread equally over the future days, rounded to the
// cent, with the rounding residual applied to the first future day so the
// month total is conserved exactly.
//
// A revised daily limit never goes below zero: a deficit that would drive
// a day negative cascades onto the days after it, and whatever cannot be
// absorbed by month end lands on the last day, which may end negative.
// That state is surfaced through FlaggedOverBudget rather than hidden.
//
// With no future days left, or zero net variance, the run is a no-op and
// NewPlans is empty.
func Redistribute(views []entity.DayView, today time.Time, alreadyApplied decimal.Decimal) Result {
	todayDate := dateOnly(today)

	var elapsed, future []entity.DayView
	for _, view := range views {
		if view.Date.After(todayDate) {
			future = append(future, view)
		} else {
			elapsed = append(elapsed, view)
		}
	}

	if len(future) == 0 {
		return Result{VarianceApplied: decimal.Zero}
	}

	rawVariance := decimal.Zero
	for _, view := range elapsed {
		rawVariance = rawVariance.Add(view.Limit.Sub(view.Spent))
	}
	variance := rawVariance.Sub(alreadyApplied)

	if variance.IsZero() {
		return Result{VarianceApplied: decimal.Zero}
	}

	remaining := decimal.NewFromInt(int64(len(future)))
	share := variance.DivRound(remaining, 2)
	residual := variance.Sub(share.Mul(remaining))

	newPlans := make([]entity.DayPlan, 0, len(future))
	carry := decimal.Zero
	flagged := false

	for i, view := range future {
		adjustment := share
		if i == 0 {
			adjustment = adjustment.Add(residual)
		}

		limit := view.Limit.Add(adjustment).Add(carry)
		carry = decimal.Zero

		if limit.IsNegative() {
			if i < len(future)-1 {
				carry = limit
				limit = decimal.Zero
			} else {
				flagged = true
			}
		}

		newPlans = append(newPlans, entity.DayPlan{
			DayNumber:  view.DayNumber,
			Date:       view.Date,
			TotalLimit: limit,
			Categories: scaleCategories(view, limit),
		})
	}

	return Result{
		NewPlans:          newPlans,
		VarianceApplied:   variance,
		FlaggedOverBudget: flagged,
	}
}

// scaleCategories rescales a day's planned category amounts so that they
// sum to the new limit while preserving each category's original share of
// the day. Rounding residue lands on the category with the largest original
// allocation. A day planned at zero puts the whole new limit under "other".
func scaleCategories(view entity.DayView, newLimit decimal.Decimal) map[string]decimal.Decimal {
	planned := make(map[string]decimal.Decimal)
	for category, amounts := range view.Categories {
		if amounts.Planned.IsPositive() {
			planned[category] = amounts.Planned
		}
	}

	if len(planned) == 0 || !view.Limit.IsPositive() {
		if newLimit.IsZero() {
			return map[string]decimal.Decimal{}
		}
		return map[string]decimal.Decimal{calendar.CategoryOther: newLimit}
	}

	// Deterministic iteration so the residual cent always lands on the
	// same category.
	names := make([]string, 0, len(planned))
	for category := range planned {
		names = append(names, category)
	}
	sort.Strings(names)

	scaled := make(map[string]decimal.Decimal, len(planned))
	sum := decimal.Zero
	largest := names[0]
	for _, category := range names {
		amount := planned[category].Mul(newLimit).DivRound(view.Limit, 2)
		scaled[category] = amount
		sum = sum.Add(amount)
		if planned[category].GreaterThan(planned[largest]) {
			largest = category
		}
	}

	if residue := newLimit.Sub(sum); !residue.IsZero() {
		scaled[largest] = scaled[largest].Add(residue)
	}

	return scaled
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
