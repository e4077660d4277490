package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lesmarvelous-backend/config"
	"lesmarvelous-backend/models"
)

// Init opens the Postgres connection and migrates the full schema.
func Init(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database connected and migrated")
	return db
}

// Migrate creates or updates every table. Shared with the test database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Document{},
		&models.Tag{},
		&models.ActivityLog{},
		&models.Employee{},
		&models.WorkSession{},
		&models.DelayReport{},
		&models.EmployeePerformance{},
	)
}

// Ping verifies the underlying connection, for the health endpoint.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
