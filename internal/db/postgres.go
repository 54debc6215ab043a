package db

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/models"
)

var DB *gorm.DB

func Init() {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_USER", "shop"),
		getEnv("POSTGRES_PASSWORD", "shop"),
		getEnv("POSTGRES_DB", "shop"),
		getEnv("DB_PORT", "5432"),
	)

	var err error

	// TranslateError turns driver unique-key violations into gorm.ErrDuplicatedKey,
	// which the order sequencer and registration rely on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate DB")
	}

	log.Info().Msg("database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
