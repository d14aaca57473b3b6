// Package classification contains income classification use cases.
package classification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/threshold"
)

var monthsPerYear = decimal.NewFromInt(12)

// Classify converts a monthly income to an annual amount and classifies it
// against the jurisdiction's thresholds. The annual amount is rounded half
// away from zero to the cent before comparison; boundary values belong to
// the lower tier. Negative and zero incomes classify as low.
func Classify(table *threshold.Table, monthlyIncome decimal.Decimal, country, subregion string) entity.IncomeTier {
	annual := monthlyIncome.Mul(monthsPerYear).Round(2)
	return table.Lookup(country, subregion).TierFor(annual)
}

// ClassifyIncomeInput represents the input for classifying a user's income.
// MonthlyIncome, Country and Subregion override the stored profile values
// when set, so the endpoint can answer "what if" queries.
type ClassifyIncomeInput struct {
	UserID        uuid.UUID
	MonthlyIncome *decimal.Decimal
	Country       string
	Subregion     string
}

// ClassifyIncomeOutput represents the result of classifying a user's income.
type ClassifyIncomeOutput struct {
	Tier          entity.IncomeTier
	MonthlyIncome decimal.Decimal
	AnnualIncome  decimal.Decimal
	Country       string
	Subregion     string
}

// ClassifyIncomeUseCase classifies the authenticated user's declared income.
type ClassifyIncomeUseCase struct {
	profileRepo    adapter.ProfileRepository
	table          *threshold.Table
	defaultCountry string
}

// NewClassifyIncomeUseCase creates a new ClassifyIncomeUseCase instance.
func NewClassifyIncomeUseCase(
	profileRepo adapter.ProfileRepository,
	table *threshold.Table,
	defaultCountry string,
) *ClassifyIncomeUseCase {
	return &ClassifyIncomeUseCase{
		profileRepo:    profileRepo,
		table:          table,
		defaultCountry: defaultCountry,
	}
}

// Execute classifies the user's income, reading the stored profile for any
// value the input does not override.
func (uc *ClassifyIncomeUseCase) Execute(
	ctx context.Context,
	input ClassifyIncomeInput,
) (*ClassifyIncomeOutput, error) {
	monthlyIncome := decimal.Zero
	country := input.Country
	subregion := input.Subregion

	if input.MonthlyIncome != nil {
		monthlyIncome = *input.MonthlyIncome
	}

	// The profile is optional when the caller overrides everything.
	if input.MonthlyIncome == nil || country == "" {
		profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load financial profile: %w", err)
		}
		if input.MonthlyIncome == nil {
			monthlyIncome = profile.MonthlyIncome
		}
		if country == "" {
			country = profile.Country
			if subregion == "" {
				subregion = profile.Subregion
			}
		}
	}

	if country == "" {
		country = uc.defaultCountry
	}

	tier := Classify(uc.table, monthlyIncome, country, subregion)

	return &ClassifyIncomeOutput{
		Tier:          tier,
		MonthlyIncome: monthlyIncome,
		AnnualIncome:  monthlyIncome.Mul(monthsPerYear).Round(2),
		Country:       country,
		Subregion:     subregion,
	}, nil
}
