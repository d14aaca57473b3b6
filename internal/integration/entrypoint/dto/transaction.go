// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a spend event.
type CreateTransactionRequest struct {
	Date     string          `json:"date" binding:"required"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Date:      t.Date.UTC().Format("2006-01-02"),
		Category:  t.Category,
		Amount:    t.Amount,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}
