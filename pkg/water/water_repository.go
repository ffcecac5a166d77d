package water

import (
	"context"

	"TrackFit-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	WaterRepository interface {
		GetWaterLog(ctx context.Context, userID string, date string) (*entities.WaterLog, error)
		UpsertWaterLog(ctx context.Context, log *entities.WaterLog) error
		AddWater(ctx context.Context, log *entities.WaterLog) error
		DeleteWaterLog(ctx context.Context, userID string, date string) error
	}

	waterRepository struct {
		db *gorm.DB
	}
)

func NewWaterRepository(db *gorm.DB) WaterRepository {
	return &waterRepository{db: db}
}

func (r *waterRepository) GetWaterLog(ctx context.Context, userID string, date string) (*entities.WaterLog, error) {
	var log entities.WaterLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *waterRepository) UpsertWaterLog(ctx context.Context, log *entities.WaterLog) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(log).Error
}

// AddWater inserts the day's row or increments its amount in one statement,
// so concurrent quick-adds are not lost.
func (r *waterRepository) AddWater(ctx context.Context, log *entities.WaterLog) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("water_logs.amount + excluded.amount"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(log).Error
}

func (r *waterRepository) DeleteWaterLog(ctx context.Context, userID string, date string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&entities.WaterLog{}).Error
}
