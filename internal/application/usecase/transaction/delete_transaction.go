// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionUseCase soft-deletes a transaction owned by the user.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CalendarCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CalendarCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute deletes the transaction after checking ownership.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return err
	}
	if tx.UserID != input.UserID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransactionAccess,
			"transaction does not belong to user",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID, tx.Date.Year(), tx.Date.Month()); err != nil {
			slog.Warn("Failed to invalidate calendar cache", "error", err)
		}
	}

	return nil
}
