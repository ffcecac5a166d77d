package entities

import "github.com/google/uuid"

// WaterLog holds one row per user and date, amount in milliliters.
type WaterLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_water_user_date" json:"user_id"`
	Date   string    `gorm:"type:varchar(10);uniqueIndex:idx_water_user_date" json:"date"`
	Amount int       `json:"amount"`

	Timestamp
}
