package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/saulo-duarte/lifeboard/internal/goal"
	"github.com/saulo-duarte/lifeboard/internal/task"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an in-memory SQLite database with every table migrated.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// each new connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&task.Task{},
		&task.TimeLog{},
		&goal.Goal{},
		&goal.Target{},
		&goal.TaskLink{},
		&goal.CheckIn{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}
