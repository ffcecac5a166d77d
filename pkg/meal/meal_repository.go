package meal

import (
	"context"

	"TrackFit-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MealRepository interface {
		Transaction(ctx context.Context, fn func(repo MealRepository) error) error

		// Meal groups
		GetMealGroupsForDate(ctx context.Context, userID string, date string) ([]*entities.MealGroup, error)
		GetMealGroupByID(ctx context.Context, id string) (*entities.MealGroup, error)
		GetMealGroupByName(ctx context.Context, userID string, date string, name string) (*entities.MealGroup, error)
		GetMealGroupNames(ctx context.Context, userID string, date string) ([]string, error)
		CreateMealGroup(ctx context.Context, group *entities.MealGroup) error
		UpdateMealGroup(ctx context.Context, group *entities.MealGroup) error
		DeleteEmptyMealGroups(ctx context.Context, userID string, date string) (int64, error)

		// Meals
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id string) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Transaction(ctx context.Context, fn func(repo MealRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&mealRepository{db: tx})
	})
}

func (r *mealRepository) GetMealGroupsForDate(ctx context.Context, userID string, date string) ([]*entities.MealGroup, error) {
	var groups []*entities.MealGroup

	if err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *mealRepository) GetMealGroupByID(ctx context.Context, id string) (*entities.MealGroup, error) {
	var group entities.MealGroup
	if err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mealRepository) GetMealGroupByName(ctx context.Context, userID string, date string, name string) (*entities.MealGroup, error) {
	var group entities.MealGroup
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND name = ?", userID, date, name).
		Order("created_at asc").
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mealRepository) GetMealGroupNames(ctx context.Context, userID string, date string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&entities.MealGroup{}).
		Where("user_id = ? AND date = ?", userID, date).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *mealRepository) CreateMealGroup(ctx context.Context, group *entities.MealGroup) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(group).Error
}

func (r *mealRepository) UpdateMealGroup(ctx context.Context, group *entities.MealGroup) error {
	return r.db.WithContext(ctx).Model(group).Update("name", group.Name).Error
}

// DeleteEmptyMealGroups removes every group of the user's day that holds no
// meals and reports how many were removed.
func (r *mealRepository) DeleteEmptyMealGroups(ctx context.Context, userID string, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Where("NOT EXISTS (SELECT 1 FROM meals WHERE meals.meal_group_id = meal_groups.id)").
		Delete(&entities.MealGroup{})
	return res.RowsAffected, res.Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("MealGroup").
		Where("id = ?", id).
		First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(meal).Error
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(meal).Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Meal{}).Error
}
