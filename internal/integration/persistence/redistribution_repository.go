// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// redistributionRepository implements the adapter.RedistributionRepository interface.
type redistributionRepository struct {
	db *gorm.DB
}

// NewRedistributionRepository creates a new redistribution repository instance.
func NewRedistributionRepository(db *gorm.DB) adapter.RedistributionRepository {
	return &redistributionRepository{
		db: db,
	}
}

// Append stores a new redistribution record.
func (r *redistributionRepository) Append(ctx context.Context, record *entity.RedistributionRecord) error {
	recordModel := model.RedistributionFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndMonth retrieves all redistribution records for a user and month.
func (r *redistributionRepository) FindByUserAndMonth(
	ctx context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) ([]*entity.RedistributionRecord, error) {
	var recordModels []model.RedistributionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, int(month)).
		Order("applied_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.RedistributionRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}
