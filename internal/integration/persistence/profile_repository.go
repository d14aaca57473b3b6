// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Upsert creates the user's financial profile or replaces the existing one.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.FinancialProfile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Save(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves the financial profile for a given user.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.FinancialProfile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}
