// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for financial profile persistence operations.
type ProfileRepository interface {
	// Upsert creates the user's financial profile or replaces the existing one.
	Upsert(ctx context.Context, profile *entity.FinancialProfile) error

	// FindByUserID retrieves the financial profile for a given user.
	// Returns domainerror.ErrProfileNotFound when the user has none.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.FinancialProfile, error)
}
