// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialProfile represents a user's declared financial situation:
// monthly income, jurisdiction, fixed expenses and variable spending habits.
type FinancialProfile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MonthlyIncome decimal.Decimal
	Country       string
	Subregion     string
	FixedExpenses map[string]decimal.Decimal // category -> monthly amount
	HabitWeights  map[string]decimal.Decimal // category -> relative weight
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewFinancialProfile creates a new FinancialProfile entity.
func NewFinancialProfile(
	userID uuid.UUID,
	monthlyIncome decimal.Decimal,
	country string,
	subregion string,
	fixedExpenses map[string]decimal.Decimal,
	habitWeights map[string]decimal.Decimal,
) *FinancialProfile {
	now := time.Now().UTC()

	return &FinancialProfile{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyIncome: monthlyIncome,
		Country:       country,
		Subregion:     subregion,
		FixedExpenses: fixedExpenses,
		HabitWeights:  habitWeights,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TotalFixedExpenses returns the sum of all fixed expense amounts.
func (p *FinancialProfile) TotalFixedExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p.FixedExpenses {
		total = total.Add(amount)
	}
	return total
}

// DisposableIncome returns monthly income minus fixed expenses.
// The result may be negative; callers decide how to surface that state.
func (p *FinancialProfile) DisposableIncome() decimal.Decimal {
	return p.MonthlyIncome.Sub(p.TotalFixedExpenses())
}
