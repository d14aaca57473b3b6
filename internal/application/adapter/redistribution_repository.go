// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// RedistributionRepository defines the interface for redistribution history persistence.
type RedistributionRepository interface {
	// Append stores a new redistribution record.
	Append(ctx context.Context, record *entity.RedistributionRecord) error

	// FindByUserAndMonth retrieves all redistribution records for a user and
	// month, ordered by application time ascending.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.RedistributionRecord, error)
}
