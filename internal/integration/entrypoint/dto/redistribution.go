// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/redistribution"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// RevisedDayResponse represents one rewritten future day after redistribution.
type RevisedDayResponse struct {
	Day        int                        `json:"day"`
	Date       string                     `json:"date"`
	Limit      decimal.Decimal            `json:"limit"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// RedistributionResponse represents the result of a redistribution run.
type RedistributionResponse struct {
	VarianceApplied   decimal.Decimal      `json:"variance_applied"`
	FlaggedOverBudget bool                 `json:"flagged_over_budget"`
	RevisedDays       []RevisedDayResponse `json:"revised_days"`
}

// RedistributionRecordResponse represents one history record in API responses.
type RedistributionRecordResponse struct {
	ID         string          `json:"id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	AppliedAt  time.Time       `json:"applied_at"`
	Variance   decimal.Decimal `json:"variance"`
	OverBudget bool            `json:"over_budget"`
	Categories []string        `json:"categories"`
}

// RedistributionHistoryResponse represents the response for listing
// redistribution history.
type RedistributionHistoryResponse struct {
	Records []RedistributionRecordResponse `json:"records"`
}

// ToRedistributionResponse converts a RedistributeMonthOutput to a RedistributionResponse DTO.
func ToRedistributionResponse(output *redistribution.RedistributeMonthOutput) RedistributionResponse {
	days := make([]RevisedDayResponse, len(output.NewPlans))
	for i, dayPlan := range output.NewPlans {
		days[i] = RevisedDayResponse{
			Day:        dayPlan.DayNumber,
			Date:       dayPlan.Date.Format("2006-01-02"),
			Limit:      dayPlan.TotalLimit,
			Categories: dayPlan.Categories,
		}
	}
	return RedistributionResponse{
		VarianceApplied:   output.VarianceApplied,
		FlaggedOverBudget: output.FlaggedOverBudget,
		RevisedDays:       days,
	}
}

// ToRedistributionHistoryResponse converts a list of records to a
// RedistributionHistoryResponse.
func ToRedistributionHistoryResponse(records []*entity.RedistributionRecord) RedistributionHistoryResponse {
	items := make([]RedistributionRecordResponse, len(records))
	for i, record := range records {
		items[i] = RedistributionRecordResponse{
			ID:         record.ID.String(),
			Year:       record.Year,
			Month:      int(record.Month),
			AppliedAt:  record.AppliedAt,
			Variance:   record.Variance,
			OverBudget: record.OverBudget,
			Categories: record.Categories,
		}
	}
	return RedistributionHistoryResponse{
		Records: items,
	}
}
