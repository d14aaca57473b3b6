// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RedistributionRecord is the audit entry appended every time the
// redistribution engine rewrites future daily limits for a month.
type RedistributionRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Year       int
	Month      time.Month
	AppliedAt  time.Time
	Variance   decimal.Decimal
	OverBudget bool
	Categories []string // categories whose allocations were rescaled
}

// NewRedistributionRecord creates a new RedistributionRecord entity.
func NewRedistributionRecord(
	userID uuid.UUID,
	year int,
	month time.Month,
	variance decimal.Decimal,
	overBudget bool,
	categories []string,
) *RedistributionRecord {
	return &RedistributionRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Year:       year,
		Month:      month,
		AppliedAt:  time.Now().UTC(),
		Variance:   variance,
		OverBudget: overBudget,
		Categories: categories,
	}
}
