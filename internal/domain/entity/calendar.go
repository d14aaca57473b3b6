// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus classifies a merged day relative to its planned limit.
type DayStatus string

const (
	// DayStatusPlanned marks days after the "today" cursor.
	DayStatusPlanned DayStatus = "planned"
	// DayStatusGood marks elapsed days within their limit.
	DayStatusGood DayStatus = "good"
	// DayStatusWarning marks elapsed days past the warning ratio of the limit.
	DayStatusWarning DayStatus = "warning"
	// DayStatusOver marks elapsed days that exceeded their limit.
	DayStatusOver DayStatus = "over"
)

// DayActual holds per-category spend derived purely from transactions.
// It may contain categories absent from the day's plan.
type DayActual struct {
	DayNumber  int
	Categories map[string]decimal.Decimal // category -> spent amount
}

// Total returns the sum of all per-category spent amounts.
func (a DayActual) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a.Categories {
		total = total.Add(amount)
	}
	return total
}

// CategoryAmounts pairs the planned and spent amount for one category
// of one day.
type CategoryAmounts struct {
	Planned decimal.Decimal
	Spent   decimal.Decimal
}

// DayView is the merged, presentation-ready representation of one calendar
// day. Categories is the union of plan and actual keys for the day; a
// category only present in the actuals carries a zero planned amount.
type DayView struct {
	DayNumber  int
	Date       time.Time
	Limit      decimal.Decimal
	Spent      decimal.Decimal
	Status     DayStatus
	Categories map[string]CategoryAmounts
	IsToday    bool
	IsWeekend  bool
}

// MonthCalendar is the merged month: one DayView per calendar day,
// ordered ascending with no gaps, plus month-level totals.
type MonthCalendar struct {
	Year       int
	Month      time.Month
	Days       []DayView
	TotalLimit decimal.Decimal
	TotalSpent decimal.Decimal
	// NegativeDisposable propagates the plan builder's flag so the UI can
	// explain an all-zero calendar.
	NegativeDisposable bool
}
