// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	newTx := func(userID uuid.UUID, date time.Time, amount string) *entity.Transaction {
		return entity.NewTransaction(userID, date, "groceries", decimal.RequireFromString(amount), "")
	}

	t.Run("round-trips a transaction", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		userID := uuid.New()
		tx := newTx(userID, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC), "42.50")

		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		found, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("failed to find transaction: %v", err)
		}
		if !found.Amount.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected amount 42.50, got %s", found.Amount)
		}
		if found.Category != "groceries" {
			t.Errorf("expected category groceries, got %s", found.Category)
		}
		if found.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, found.UserID)
		}
	})

	t.Run("filters by user and month", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		userID := uuid.New()
		otherUser := uuid.New()

		inMonth := newTx(userID, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), "10")
		firstDay := newTx(userID, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), "20")
		monthBefore := newTx(userID, time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC), "30")
		monthAfter := newTx(userID, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), "40")
		otherOwner := newTx(otherUser, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), "50")

		for _, tx := range []*entity.Transaction{inMonth, firstDay, monthBefore, monthAfter, otherOwner} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		found, err := repo.FindByUserAndMonth(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(found))
		}
		// Ordered by date ascending.
		if found[0].ID != firstDay.ID || found[1].ID != inMonth.ID {
			t.Error("expected transactions ordered by date ascending")
		}
	})

	t.Run("delete hides the transaction from reads", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		userID := uuid.New()
		tx := newTx(userID, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC), "10")

		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
		if err := repo.Delete(ctx, tx.ID); err != nil {
			t.Fatalf("failed to delete transaction: %v", err)
		}

		if _, err := repo.FindByID(ctx, tx.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound after delete, got %v", err)
		}

		found, err := repo.FindByUserAndMonth(ctx, userID, 2026, time.June)
		if err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected deleted transaction excluded from month listing, got %d", len(found))
		}
	})

	t.Run("unknown id returns the not-found sentinel", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
