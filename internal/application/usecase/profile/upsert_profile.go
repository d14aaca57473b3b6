// Package profile contains financial profile use cases.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// UpsertProfileInput represents the input for creating or replacing a profile.
type UpsertProfileInput struct {
	UserID        uuid.UUID
	MonthlyIncome decimal.Decimal
	Country       string
	Subregion     string
	FixedExpenses map[string]decimal.Decimal
	HabitWeights  map[string]decimal.Decimal
}

// UpsertProfileOutput represents the stored financial profile.
type UpsertProfileOutput struct {
	Profile *entity.FinancialProfile
}

// UpsertProfileUseCase creates or replaces the user's financial profile.
type UpsertProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpsertProfileUseCase creates a new UpsertProfileUseCase instance.
func NewUpsertProfileUseCase(profileRepo adapter.ProfileRepository) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute validates and stores the profile. An existing profile keeps its
// identity; only the declared values are replaced.
func (uc *UpsertProfileUseCase) Execute(
	ctx context.Context,
	input UpsertProfileInput,
) (*UpsertProfileOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	profile := entity.NewFinancialProfile(
		input.UserID,
		input.MonthlyIncome,
		input.Country,
		input.Subregion,
		input.FixedExpenses,
		input.HabitWeights,
	)

	existing, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load existing profile: %w", err)
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	return &UpsertProfileOutput{Profile: profile}, nil
}

// validateInput validates the declared amounts and weights.
func (uc *UpsertProfileUseCase) validateInput(input UpsertProfileInput) error {
	if input.MonthlyIncome.IsNegative() {
		return domainerror.NewProfileError(
			domainerror.ErrCodeInvalidMonthlyIncome,
			"monthly income must not be negative",
			domainerror.ErrInvalidMonthlyIncome,
		)
	}
	for category, amount := range input.FixedExpenses {
		if amount.IsNegative() {
			return domainerror.NewProfileError(
				domainerror.ErrCodeInvalidFixedExpense,
				fmt.Sprintf("fixed expense %q must not be negative", category),
				domainerror.ErrInvalidFixedExpense,
			)
		}
	}
	for category, weight := range input.HabitWeights {
		if weight.IsNegative() {
			return domainerror.NewProfileError(
				domainerror.ErrCodeInvalidHabitWeight,
				fmt.Sprintf("habit weight %q must not be negative", category),
				domainerror.ErrInvalidHabitWeight,
			)
		}
	}
	return nil
}
