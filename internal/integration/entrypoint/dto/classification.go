// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/classification"
)

// ClassificationResponse represents the income classification result.
type ClassificationResponse struct {
	Tier          string          `json:"tier"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	AnnualIncome  decimal.Decimal `json:"annual_income"`
	Country       string          `json:"country"`
	Subregion     string          `json:"subregion,omitempty"`
}

// ToClassificationResponse converts a ClassifyIncomeOutput to a ClassificationResponse DTO.
func ToClassificationResponse(output *classification.ClassifyIncomeOutput) ClassificationResponse {
	return ClassificationResponse{
		Tier:          string(output.Tier),
		MonthlyIncome: output.MonthlyIncome,
		AnnualIncome:  output.AnnualIncome,
		Country:       output.Country,
		Subregion:     output.Subregion,
	}
}
