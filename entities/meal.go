package entities

import "github.com/google/uuid"

type MealGroup struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_meal_group_user_date_name" json:"user_id"`
	Date   string    `gorm:"type:varchar(10);uniqueIndex:idx_meal_group_user_date_name" json:"date"`
	Name   string    `gorm:"type:varchar(100);uniqueIndex:idx_meal_group_user_date_name" json:"name"`

	Meals []Meal `gorm:"foreignKey:MealGroupID;constraint:OnDelete:CASCADE" json:"meals"`
	Timestamp
}

// Meal nutrition is the absolute amount eaten, frozen when the meal is saved.
type Meal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MealGroupID uuid.UUID  `gorm:"type:uuid;index" json:"meal_group_id"`
	FoodID      *uuid.UUID `gorm:"type:uuid" json:"food_id,omitempty"`
	Name        string     `json:"name"`
	Calories    int        `json:"calories"`
	Protein     int        `json:"protein"`
	Carbs       int        `json:"carbs"`
	Fat         int        `json:"fat"`
	Weight      *float64   `json:"weight,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`

	MealGroup *MealGroup `gorm:"foreignKey:MealGroupID"`
	Food      *Food      `gorm:"foreignKey:FoodID"`
	Timestamp
}
