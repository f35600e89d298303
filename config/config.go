package config

import (
	"fmt"
	"os"

	"github.com/eatn-dev/eatn-menu-api/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to postgres and synchronizes the schema. TranslateError is
// enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey
// instead of driver-specific errors.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, reading configuration from environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.MenuItem{},
		&models.Tag{},
	); err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
}
