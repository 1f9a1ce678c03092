package database

import (
	"farmsync/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDb opens a private in-memory SQLite database, migrates the schema
// and installs it as the global instance. Each call gets a fresh database.
func ConnectTestDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}

	// SQLite allows a single writer; keep everything on one connection so
	// transactions in tests never race each other on the shared handle.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get test database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Crop{},
		&models.Order{},
		&models.Review{},
	); err != nil {
		log.Fatalf("Test migration failed: %v", err)
	}

	Database = DbInstance{Db: db}
	return db
}
