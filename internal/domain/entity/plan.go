// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayPlan represents the planned budget for one calendar day.
// It is an immutable value object: merge and redistribution steps produce
// new plans rather than mutating existing ones.
type DayPlan struct {
	DayNumber  int
	Date       time.Time
	TotalLimit decimal.Decimal
	Categories map[string]decimal.Decimal // category -> planned amount
}

// CloneCategories returns a copy of the per-category planned amounts.
func (p DayPlan) CloneCategories() map[string]decimal.Decimal {
	clone := make(map[string]decimal.Decimal, len(p.Categories))
	for category, amount := range p.Categories {
		clone[category] = amount
	}
	return clone
}

// MonthPlan is the full planned calendar for one month.
type MonthPlan struct {
	Year             int
	Month            time.Month
	Days             []DayPlan
	DisposableIncome decimal.Decimal
	// NegativeDisposable is set when fixed expenses exceed monthly income.
	// All variable allocations are zero in that case; the condition is a
	// valid real-world state surfaced to the caller, not a failure.
	NegativeDisposable bool
}

// TotalLimit returns the sum of all daily limits in the plan.
func (m MonthPlan) TotalLimit() decimal.Decimal {
	total := decimal.Zero
	for _, day := range m.Days {
		total = total.Add(day.TotalLimit)
	}
	return total
}
