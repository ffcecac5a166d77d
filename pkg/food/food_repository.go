package food

import (
	"context"
	"strings"

	"TrackFit-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		GetFoods(ctx context.Context, page, limit int) ([]*entities.Food, int64, error)
		SearchFoods(ctx context.Context, query string, limit int) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)

		// Seeding
		CreateFood(ctx context.Context, food *entities.Food) error
		CreateMeasurementUnit(ctx context.Context, unit *entities.FoodMeasurementUnit) error
		GetFoodIDsByName(ctx context.Context) (map[string]string, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func preloadUnits(db *gorm.DB) *gorm.DB {
	return db.Order("unit asc")
}

func (r *foodRepository) GetFoods(ctx context.Context, page, limit int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Food{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("MeasurementUnits", preloadUnits).
		Order("name_he asc").
		Offset(offset).Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

// SearchFoods matches query case-insensitively against both the Hebrew and
// the English name.
func (r *foodRepository) SearchFoods(ctx context.Context, query string, limit int) ([]*entities.Food, error) {
	var foods []*entities.Food
	pattern := "%" + strings.ToLower(query) + "%"

	if err := r.db.WithContext(ctx).
		Preload("MeasurementUnits", preloadUnits).
		Where("LOWER(name_he) LIKE ? OR LOWER(name_en) LIKE ?", pattern, pattern).
		Order("name_he asc").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("MeasurementUnits", preloadUnits).
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) CreateMeasurementUnit(ctx context.Context, unit *entities.FoodMeasurementUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

// GetFoodIDsByName maps both locale names of every food to its id.
func (r *foodRepository) GetFoodIDsByName(ctx context.Context) (map[string]string, error) {
	var foods []entities.Food
	if err := r.db.WithContext(ctx).Select("id", "name_he", "name_en").Find(&foods).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(foods)*2)
	for _, f := range foods {
		if f.NameEn != "" {
			ids[f.NameEn] = f.ID.String()
		}
		if f.NameHe != "" {
			ids[f.NameHe] = f.ID.String()
		}
	}
	return ids, nil
}
