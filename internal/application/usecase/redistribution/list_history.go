// Package redistribution contains the budget redistribution engine and its
// use cases.
package redistribution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// ListHistoryInput represents the input for listing redistribution history.
type ListHistoryInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// ListHistoryOutput represents the redistribution history for a month.
type ListHistoryOutput struct {
	Records []*entity.RedistributionRecord
}

// ListHistoryUseCase lists the redistribution records of a user's month.
type ListHistoryUseCase struct {
	redistributionRepo adapter.RedistributionRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(redistributionRepo adapter.RedistributionRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		redistributionRepo: redistributionRepo,
	}
}

// Execute retrieves all redistribution records for the given month.
func (uc *ListHistoryUseCase) Execute(
	ctx context.Context,
	input ListHistoryInput,
) (*ListHistoryOutput, error) {
	records, err := uc.redistributionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load redistribution history: %w", err)
	}

	return &ListHistoryOutput{Records: records}, nil
}
