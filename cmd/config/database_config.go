package config

import (
	"fmt"

	"TrackFit-Backend/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the auth provider's Postgres database, or a local SQLite
// file when DB_TYPE=sqlite.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbType := utils.GetConfig("DB_TYPE"); dbType {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfig("DB_PATH") + "?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Errorf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
