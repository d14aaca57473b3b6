// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// openTestDB opens a fresh in-memory sqlite database with the budget schema.
// The redistribution model is excluded because its array column only exists
// on postgres.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.ProfileModel{},
		&model.TransactionModel{},
		&model.MonthPlanModel{},
		&model.DayPlanModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
