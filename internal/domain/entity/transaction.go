// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single spend event recorded against a category.
// Amounts are always non-negative; the calendar engine only tracks outflow.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Category  string
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	category string,
	amount decimal.Decimal,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Category:  category,
		Amount:    amount,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RawTransaction is the minimal shape the aggregation step consumes.
// Date is kept as a string so rows with unparsable dates can be skipped
// instead of failing the whole month.
type RawTransaction struct {
	Date     string
	Category string
	Amount   decimal.Decimal
}
