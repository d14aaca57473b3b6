// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserAndMonth retrieves all transactions of a user dated within
	// the given month, ordered by date ascending.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error)

	// Delete removes a transaction from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
