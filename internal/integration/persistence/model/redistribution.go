// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// RedistributionModel represents the redistribution_records table in the database.
type RedistributionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_redistributions_user_month"`
	Year       int             `gorm:"not null;index:idx_redistributions_user_month"`
	Month      int             `gorm:"not null;index:idx_redistributions_user_month"`
	AppliedAt  time.Time       `gorm:"not null"`
	Variance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OverBudget bool            `gorm:"not null;default:false"`
	Categories pq.StringArray  `gorm:"type:text[]"`
}

// TableName returns the table name for the RedistributionModel.
func (RedistributionModel) TableName() string {
	return "redistribution_records"
}

// ToEntity converts a RedistributionModel to a domain RedistributionRecord entity.
func (m *RedistributionModel) ToEntity() *entity.RedistributionRecord {
	return &entity.RedistributionRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		Year:       m.Year,
		Month:      time.Month(m.Month),
		AppliedAt:  m.AppliedAt,
		Variance:   m.Variance,
		OverBudget: m.OverBudget,
		Categories: m.Categories,
	}
}

// RedistributionFromEntity creates a RedistributionModel from a domain RedistributionRecord entity.
func RedistributionFromEntity(record *entity.RedistributionRecord) *RedistributionModel {
	return &RedistributionModel{
		ID:         record.ID,
		UserID:     record.UserID,
		Year:       record.Year,
		Month:      int(record.Month),
		AppliedAt:  record.AppliedAt,
		Variance:   record.Variance,
		OverBudget: record.OverBudget,
		Categories: record.Categories,
	}
}
