// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProfileModel represents the financial_profiles table in the database.
type ProfileModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Country       string          `gorm:"type:varchar(2);not null"`
	Subregion     string          `gorm:"type:varchar(10)"`
	FixedExpenses DecimalMapJSON  `gorm:"type:jsonb"`
	HabitWeights  DecimalMapJSON  `gorm:"type:jsonb"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "financial_profiles"
}

// ToEntity converts a ProfileModel to a domain FinancialProfile entity.
func (m *ProfileModel) ToEntity() *entity.FinancialProfile {
	return &entity.FinancialProfile{
		ID:            m.ID,
		UserID:        m.UserID,
		MonthlyIncome: m.MonthlyIncome,
		Country:       m.Country,
		Subregion:     m.Subregion,
		FixedExpenses: m.FixedExpenses,
		HabitWeights:  m.HabitWeights,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain FinancialProfile entity.
func ProfileFromEntity(profile *entity.FinancialProfile) *ProfileModel {
	return &ProfileModel{
		ID:            profile.ID,
		UserID:        profile.UserID,
		MonthlyIncome: profile.MonthlyIncome,
		Country:       profile.Country,
		Subregion:     profile.Subregion,
		FixedExpenses: profile.FixedExpenses,
		HabitWeights:  profile.HabitWeights,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}
