package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection reused across scenarios.
// The redistribution history model is not migrated here because its array
// column only exists on postgres; scenarios use the in-memory history
// repository instead.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens (once) the shared in-memory database with the budget schema.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		Conn: conn,
		models: []any{
			&model.ProfileModel{},
			&model.TransactionModel{},
			&model.MonthPlanModel{},
			&model.DayPlanModel{},
		},
	}

	if err := conn.AutoMigrate(newDb.models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return newDb
}

// Reset wipes every table so each scenario starts from a clean state.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
