package target

import (
	"context"

	"TrackFit-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TargetRepository interface {
		Transaction(ctx context.Context, fn func(repo TargetRepository) error) error

		CreateProfile(ctx context.Context, profile *entities.UserProfile) error
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)

		UpsertTargets(ctx context.Context, targets *entities.UserTarget) error
		GetTargetsByUserID(ctx context.Context, userID string) (*entities.UserTarget, error)
	}

	targetRepository struct {
		db *gorm.DB
	}
)

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Transaction(ctx context.Context, fn func(repo TargetRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&targetRepository{db: tx})
	})
}

func (r *targetRepository) CreateProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *targetRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertTargets keeps one target row per user.
func (r *targetRepository) UpsertTargets(ctx context.Context, targets *entities.UserTarget) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "protein", "carbs", "fat", "updated_at"}),
	}).Create(targets).Error
}

func (r *targetRepository) GetTargetsByUserID(ctx context.Context, userID string) (*entities.UserTarget, error) {
	var targets entities.UserTarget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&targets).Error; err != nil {
		return nil, err
	}
	return &targets, nil
}
