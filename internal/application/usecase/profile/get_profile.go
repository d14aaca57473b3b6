// Package profile contains financial profile use cases.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// GetProfileInput represents the input for retrieving a financial profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the retrieved financial profile.
type GetProfileOutput struct {
	Profile *entity.FinancialProfile
}

// GetProfileUseCase retrieves the authenticated user's financial profile.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute retrieves the profile for the given user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{Profile: profile}, nil
}
