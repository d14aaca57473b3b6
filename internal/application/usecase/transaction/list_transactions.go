// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing a month's transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// ListTransactionsOutput represents the listed transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists all transactions of a user's month.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the transactions for the given month.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
