// Package calendar contains the month calendar use cases.
package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// warningRatio is the share of a day's limit past which an elapsed day is
// flagged as a warning. Kept as a named value so it can be tuned without
// touching the merge logic.
var warningRatio = decimal.RequireFromString("0.85")

// MergeCalendar combines a month plan with aggregated actual spend into a
// unified day-by-day view.
//
// For every calendar day of the month, in order and with no gaps:
//   - the category set is the union of the day's plan and actual keys;
//     categories only present in the actuals carry a zero planned amount;
//   - spend is shown only for days up to and including today, so a
//     transaction erroneously dated in the future never surfaces early;
//   - status is "planned" for future days, "over" past the limit, "warning"
//     past warningRatio of the limit, and "good" otherwise. A day with a
//     zero limit is always "good": with no declared budget there is nothing
//     to exceed.
func MergeCalendar(plan entity.MonthPlan, actuals map[int]entity.DayActual, today time.Time) entity.MonthCalendar {
	daysInMonth := time.Date(plan.Year, plan.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	todayDate := dateOnly(today)

	planByDay := make(map[int]entity.DayPlan, len(plan.Days))
	for _, dayPlan := range plan.Days {
		planByDay[dayPlan.DayNumber] = dayPlan
	}

	views := make([]entity.DayView, 0, daysInMonth)
	totalLimit := decimal.Zero
	totalSpent := decimal.Zero

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(plan.Year, plan.Month, day, 0, 0, 0, 0, time.UTC)
		elapsed := !date.After(todayDate)

		dayPlan, hasPlan := planByDay[day]
		actual, hasActual := actuals[day]

		categories := make(map[string]entity.CategoryAmounts)
		if hasPlan {
			for category, planned := range dayPlan.Categories {
				categories[category] = entity.CategoryAmounts{Planned: planned, Spent: decimal.Zero}
			}
		}
		if hasActual {
			for category, spent := range actual.Categories {
				amounts := categories[category]
				if elapsed {
					amounts.Spent = spent
				}
				categories[category] = amounts
			}
		}

		limit := decimal.Zero
		if hasPlan {
			limit = dayPlan.TotalLimit
		}
		spent := decimal.Zero
		for _, amounts := range categories {
			spent = spent.Add(amounts.Spent)
		}

		views = append(views, entity.DayView{
			DayNumber:  day,
			Date:       date,
			Limit:      limit,
			Spent:      spent,
			Status:     dayStatus(date, todayDate, limit, spent),
			Categories: categories,
			IsToday:    date.Equal(todayDate),
			IsWeekend:  isWeekend(date),
		})

		totalLimit = totalLimit.Add(limit)
		totalSpent = totalSpent.Add(spent)
	}

	return entity.MonthCalendar{
		Year:               plan.Year,
		Month:              plan.Month,
		Days:               views,
		TotalLimit:         totalLimit,
		TotalSpent:         totalSpent,
		NegativeDisposable: plan.NegativeDisposable,
	}
}

// dayStatus applies the status rules for one merged day.
func dayStatus(date, todayDate time.Time, limit, spent decimal.Decimal) entity.DayStatus {
	if date.After(todayDate) {
		return entity.DayStatusPlanned
	}
	if limit.IsPositive() && spent.GreaterThan(limit) {
		return entity.DayStatusOver
	}
	if limit.IsPositive() && spent.GreaterThan(limit.Mul(warningRatio)) {
		return entity.DayStatusWarning
	}
	return entity.DayStatusGood
}

// isWeekend reports whether the date falls on an ISO weekday 6 or 7.
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
