// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryAmountsResponse pairs the planned and spent amounts for one
// category of one day.
type CategoryAmountsResponse struct {
	Planned decimal.Decimal `json:"planned"`
	Spent   decimal.Decimal `json:"spent"`
}

// DayResponse represents one merged calendar day in API responses.
type DayResponse struct {
	Day        int                                `json:"day"`
	Date       string                             `json:"date"`
	Limit      decimal.Decimal                    `json:"limit"`
	Spent      decimal.Decimal                    `json:"spent"`
	Status     string                             `json:"status"`
	Categories map[string]CategoryAmountsResponse `json:"categories"`
	IsToday    bool                               `json:"is_today"`
	IsWeekend  bool                               `json:"is_weekend"`
}

// CalendarResponse represents the merged month calendar.
type CalendarResponse struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Tier               string          `json:"tier"`
	Days               []DayResponse   `json:"days"`
	TotalLimit         decimal.Decimal `json:"total_limit"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
	NegativeDisposable bool            `json:"negative_disposable"`
}

// ToCalendarResponse converts a BuildMonthCalendarOutput to a CalendarResponse DTO.
func ToCalendarResponse(output *calendar.BuildMonthCalendarOutput) CalendarResponse {
	days := make([]DayResponse, len(output.Calendar.Days))
	for i, day := range output.Calendar.Days {
		days[i] = toDayResponse(day)
	}
	return CalendarResponse{
		Year:               output.Calendar.Year,
		Month:              int(output.Calendar.Month),
		Tier:               string(output.Tier),
		Days:               days,
		TotalLimit:         output.Calendar.TotalLimit,
		TotalSpent:         output.Calendar.TotalSpent,
		NegativeDisposable: output.Calendar.NegativeDisposable,
	}
}

func toDayResponse(day entity.DayView) DayResponse {
	categories := make(map[string]CategoryAmountsResponse, len(day.Categories))
	for name, amounts := range day.Categories {
		categories[name] = CategoryAmountsResponse{
			Planned: amounts.Planned,
			Spent:   amounts.Spent,
		}
	}
	return DayResponse{
		Day:        day.DayNumber,
		Date:       day.Date.Format("2006-01-02"),
		Limit:      day.Limit,
		Spent:      day.Spent,
		Status:     string(day.Status),
		Categories: categories,
		IsToday:    day.IsToday,
		IsWeekend:  day.IsWeekend,
	}
}
