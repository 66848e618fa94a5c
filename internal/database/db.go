package database

import (
	"fmt"
	"log"
	"time"

	"go-repairshop/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to MySQL and migrates the schema. The handle is returned to
// the caller; every store and service receives it explicitly.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database: DB_DSN is not set")
	}

	var db *gorm.DB
	var err error

	// Wait for the DB to come up (docker-compose ordering).
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("database: connect failed, retrying in 2s (%d/5): %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("database: connect after 5 attempts: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate syncs the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}
