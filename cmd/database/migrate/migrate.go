package migration

import (
	"TrackFit-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	models := []struct {
		name  string
		model interface{}
	}{
		{"user profile", &entities.UserProfile{}},
		{"user target", &entities.UserTarget{}},
		{"food", &entities.Food{}},
		{"food measurement unit", &entities.FoodMeasurementUnit{}},
		{"meal group", &entities.MealGroup{}},
		{"meal", &entities.Meal{}},
		{"water log", &entities.WaterLog{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorf("Error migrating %s table: %v", m.name, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
