// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// UpsertProfileRequest represents the request body for creating or replacing
// the financial profile.
type UpsertProfileRequest struct {
	MonthlyIncome decimal.Decimal            `json:"monthly_income" binding:"required"`
	Country       string                     `json:"country,omitempty"`
	Subregion     string                     `json:"subregion,omitempty"`
	FixedExpenses map[string]decimal.Decimal `json:"fixed_expenses,omitempty"`
	HabitWeights  map[string]decimal.Decimal `json:"habit_weights,omitempty"`
}

// ProfileResponse represents the financial profile in API responses.
type ProfileResponse struct {
	ID               string                     `json:"id"`
	UserID           string                     `json:"user_id"`
	MonthlyIncome    decimal.Decimal            `json:"monthly_income"`
	Country          string                     `json:"country"`
	Subregion        string                     `json:"subregion,omitempty"`
	FixedExpenses    map[string]decimal.Decimal `json:"fixed_expenses"`
	HabitWeights     map[string]decimal.Decimal `json:"habit_weights"`
	DisposableIncome decimal.Decimal            `json:"disposable_income"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// ToProfileResponse converts a domain FinancialProfile entity to a ProfileResponse DTO.
func ToProfileResponse(p *entity.FinancialProfile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		MonthlyIncome:    p.MonthlyIncome,
		Country:          p.Country,
		Subregion:        p.Subregion,
		FixedExpenses:    p.FixedExpenses,
		HabitWeights:     p.HabitWeights,
		DisposableIncome: p.DisposableIncome(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
