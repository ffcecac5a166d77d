package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime" json:"updated_at"`
}

// newID fills an empty primary key. Keys are generated in Go so the same
// models migrate on Postgres and SQLite.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (f *Food) BeforeCreate(*gorm.DB) error {
	newID(&f.ID)
	return nil
}

func (u *FoodMeasurementUnit) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (t *UserTarget) BeforeCreate(*gorm.DB) error {
	newID(&t.ID)
	return nil
}

func (g *MealGroup) BeforeCreate(*gorm.DB) error {
	newID(&g.ID)
	return nil
}

func (m *Meal) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)
	return nil
}

func (w *WaterLog) BeforeCreate(*gorm.DB) error {
	newID(&w.ID)
	return nil
}
