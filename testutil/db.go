// Package testutil provides the shared in-memory database fixture for
// service and controller tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesmarvelous-backend/database"
)

// NewTestDB opens an in-memory SQLite database with the full schema applied.
// The connection is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps all pooled connections on the same
	// store while staying isolated per test.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}
