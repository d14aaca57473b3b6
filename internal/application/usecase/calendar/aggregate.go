// Package calendar contains the month calendar use cases: spend
// aggregation, plan/actual merging and calendar assembly.
package calendar

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryOther is the sentinel category for transactions without one.
const CategoryOther = "other"

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// AggregateSpend folds raw transactions into per-day, per-category spent
// totals for the target month.
//
// Rows with an unparsable date or a date outside the target month are
// logged and skipped; a single malformed row must not abort aggregation of
// the remaining month. Categories are normalized case-insensitively and an
// absent category maps to "other". Summation is commutative, so input order
// does not affect the result.
func AggregateSpend(transactions []entity.RawTransaction, year int, month time.Month) map[int]entity.DayActual {
	actuals := make(map[int]entity.DayActual)

	for _, tx := range transactions {
		date, err := time.Parse(DateLayout, tx.Date)
		if err != nil {
			slog.Warn("Skipping transaction with unparsable date",
				"date", tx.Date,
				"category", tx.Category,
			)
			continue
		}
		if date.Year() != year || date.Month() != month {
			slog.Warn("Skipping transaction outside target month",
				"date", tx.Date,
				"year", year,
				"month", int(month),
			)
			continue
		}

		category := NormalizeCategory(tx.Category)
		day := date.Day()

		actual, ok := actuals[day]
		if !ok {
			actual = entity.DayActual{
				DayNumber:  day,
				Categories: make(map[string]decimal.Decimal),
			}
		}

		actual.Categories[category] = actual.Categories[category].Add(tx.Amount)
		actuals[day] = actual
	}

	return actuals
}

// NormalizeCategory trims and lowercases a category name, mapping empty
// values to the "other" sentinel.
func NormalizeCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if normalized == "" {
		return CategoryOther
	}
	return normalized
}
