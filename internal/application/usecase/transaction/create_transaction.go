// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Notes    string
}

// CreateTransactionOutput represents the created transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase records a new spend event and invalidates the
// cached calendar of the affected month.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.CalendarCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.CalendarCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute validates and stores the transaction.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.Date.UTC(),
		calendar.NormalizeCategory(input.Category),
		input.Amount.Round(2),
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.invalidateCalendar(ctx, input.UserID, tx.Date)

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// invalidateCalendar drops the cached calendar of the transaction's month.
func (uc *CreateTransactionUseCase) invalidateCalendar(ctx context.Context, userID uuid.UUID, date time.Time) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, userID, date.Year(), date.Month()); err != nil {
		slog.Warn("Failed to invalidate calendar cache", "error", err)
	}
}
