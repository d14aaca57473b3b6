// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// SaveMonth persists a full month plan, replacing any existing plan for the
// same user and month.
func (r *planRepository) SaveMonth(ctx context.Context, userID uuid.UUID, plan *entity.MonthPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := "user_id = ? AND year = ? AND month = ?"

		if err := tx.Where(scope, userID, plan.Year, int(plan.Month)).
			Delete(&model.DayPlanModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where(scope, userID, plan.Year, int(plan.Month)).
			Delete(&model.MonthPlanModel{}).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		header := &model.MonthPlanModel{
			ID:                 uuid.New(),
			UserID:             userID,
			Year:               plan.Year,
			Month:              int(plan.Month),
			DisposableIncome:   plan.DisposableIncome,
			NegativeDisposable: plan.NegativeDisposable,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.Create(header).Error; err != nil {
			return err
		}

		for _, dayPlan := range plan.Days {
			if err := tx.Create(model.DayPlanFromEntity(userID, plan.Year, plan.Month, dayPlan)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindMonth retrieves the saved plan for a user and month. Returns
// (nil, nil) when no plan has been saved yet.
func (r *planRepository) FindMonth(
	ctx context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
) (*entity.MonthPlan, error) {
	var header model.MonthPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, int(month)).
		First(&header)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	var dayModels []model.DayPlanModel
	result = r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, int(month)).
		Order("day_number ASC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]entity.DayPlan, len(dayModels))
	for i, dm := range dayModels {
		days[i] = dm.ToEntity()
	}

	return &entity.MonthPlan{
		Year:               year,
		Month:              month,
		Days:               days,
		DisposableIncome:   header.DisposableIncome,
		NegativeDisposable: header.NegativeDisposable,
	}, nil
}

// ReplaceFutureDays overwrites the plans of the given days only, leaving
// all other days of the month untouched.
func (r *planRepository) ReplaceFutureDays(
	ctx context.Context,
	userID uuid.UUID,
	year int,
	month time.Month,
	days []entity.DayPlan,
) error {
	if len(days) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dayNumbers := make([]int, len(days))
		for i, dayPlan := range days {
			dayNumbers[i] = dayPlan.DayNumber
		}

		if err := tx.Where("user_id = ? AND year = ? AND month = ? AND day_number IN ?",
			userID, year, int(month), dayNumbers).
			Delete(&model.DayPlanModel{}).Error; err != nil {
			return err
		}

		for _, dayPlan := range days {
			if err := tx.Create(model.DayPlanFromEntity(userID, year, month, dayPlan)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
