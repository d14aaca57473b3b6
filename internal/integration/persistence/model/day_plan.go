// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// MonthPlanModel represents the month_plans table: one header row per
// planned month.
type MonthPlanModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_month_plans_user_month"`
	Year               int             `gorm:"not null;uniqueIndex:idx_month_plans_user_month"`
	Month              int             `gorm:"not null;uniqueIndex:idx_month_plans_user_month"`
	DisposableIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NegativeDisposable bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthPlanModel.
func (MonthPlanModel) TableName() string {
	return "month_plans"
}

// DayPlanModel represents the day_plans table: one row per planned day.
type DayPlanModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_day_plans_user_month_day"`
	Year       int             `gorm:"not null;uniqueIndex:idx_day_plans_user_month_day"`
	Month      int             `gorm:"not null;uniqueIndex:idx_day_plans_user_month_day"`
	DayNumber  int             `gorm:"not null;uniqueIndex:idx_day_plans_user_month_day"`
	Date       time.Time       `gorm:"type:date;not null"`
	TotalLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Categories DecimalMapJSON  `gorm:"type:jsonb"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DayPlanModel.
func (DayPlanModel) TableName() string {
	return "day_plans"
}

// ToEntity converts a DayPlanModel to a domain DayPlan value.
func (m *DayPlanModel) ToEntity() entity.DayPlan {
	return entity.DayPlan{
		DayNumber:  m.DayNumber,
		Date:       m.Date,
		TotalLimit: m.TotalLimit,
		Categories: m.Categories,
	}
}

// DayPlanFromEntity creates a DayPlanModel from a domain DayPlan value.
func DayPlanFromEntity(userID uuid.UUID, year int, month time.Month, plan entity.DayPlan) *DayPlanModel {
	now := time.Now().UTC()

	return &DayPlanModel{
		ID:         uuid.New(),
		UserID:     userID,
		Year:       year,
		Month:      int(month),
		DayNumber:  plan.DayNumber,
		Date:       plan.Date,
		TotalLimit: plan.TotalLimit,
		Categories: plan.Categories,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
