package entities

import "github.com/google/uuid"

// Food nutrition values are per 100 grams.
type Food struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NameHe   string    `gorm:"index" json:"name_he"`
	NameEn   string    `gorm:"index" json:"name_en"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	ImageURL *string   `json:"image_url,omitempty"`

	MeasurementUnits []FoodMeasurementUnit `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"food_measurement_units"`
	Timestamp
}

type FoodMeasurementUnit struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_food_unit" json:"food_id"`
	Unit   string    `gorm:"uniqueIndex:idx_food_unit" json:"unit"`
	Grams  float64   `json:"grams"`
}

func (f *Food) DisplayName() string {
	if f.NameHe != "" {
		return f.NameHe
	}
	return f.NameEn
}
