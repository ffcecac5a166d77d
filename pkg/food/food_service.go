package food

import (
	"context"
	"errors"
	"strings"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/entities"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		GetFoods(ctx context.Context, page, limit int) ([]domain.FoodResponse, int64, error)
		SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		GetMeasurementUnits(ctx context.Context, id string) ([]domain.MeasurementUnitResponse, error)
		CalculateNutrition(ctx context.Context, id string, req domain.CalculateNutritionRequest) (domain.NutritionResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) GetFoods(ctx context.Context, page, limit int) ([]domain.FoodResponse, int64, error) {
	foods, count, err := s.foodRepository.GetFoods(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toFoodResponses(foods), count, nil
}

func (s *foodService) SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptySearchQuery
	}
	if limit <= 0 {
		limit = domain.DefaultFoodSearchLimit
	}

	foods, err := s.foodRepository.SearchFoods(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) GetMeasurementUnits(ctx context.Context, id string) ([]domain.MeasurementUnitResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUnitResponses(ToNutritionFood(food)), nil
}

func (s *foodService) CalculateNutrition(ctx context.Context, id string, req domain.CalculateNutritionRequest) (domain.NutritionResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.NutritionResponse{}, err
	}

	amount := float64(nutrition.DefaultAmount)
	if req.Amount != nil {
		amount = *req.Amount
	}
	unit := req.Unit
	if unit == "" {
		unit = nutrition.DefaultUnit
	}

	n, err := nutrition.CalculateNutrition(ToNutritionFood(food), amount, unit)
	if err != nil {
		return domain.NutritionResponse{}, err
	}

	return domain.NutritionResponse{
		FoodID:   food.ID.String(),
		Amount:   amount,
		Unit:     unit,
		Calories: n.Calories,
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
	}, nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

// ToNutritionFood converts a stored food and its declared units into the
// calculator's input.
func ToNutritionFood(f *entities.Food) nutrition.Food {
	units := make([]nutrition.MeasurementUnit, 0, len(f.MeasurementUnits))
	for _, u := range f.MeasurementUnits {
		units = append(units, nutrition.MeasurementUnit{Unit: u.Unit, Grams: u.Grams})
	}
	return nutrition.Food{
		Calories:         f.Calories,
		Protein:          f.Protein,
		Carbs:            f.Carbs,
		Fat:              f.Fat,
		MeasurementUnits: units,
	}
}

func toUnitResponses(f nutrition.Food) []domain.MeasurementUnitResponse {
	units := f.Units()
	res := make([]domain.MeasurementUnitResponse, 0, len(units))
	for i, u := range units {
		res = append(res, domain.MeasurementUnitResponse{
			Unit:     u.Unit,
			Grams:    u.Grams,
			Implicit: i == 0,
		})
	}
	return res
}

func toFoodResponse(f *entities.Food) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:               f.ID.String(),
		NameHe:           f.NameHe,
		NameEn:           f.NameEn,
		Calories:         f.Calories,
		Protein:          f.Protein,
		Carbs:            f.Carbs,
		Fat:              f.Fat,
		MeasurementUnits: toUnitResponses(ToNutritionFood(f)),
	}
	if f.ImageURL != nil {
		res.ImageURL = *f.ImageURL
	}
	return res
}

func toFoodResponses(foods []*entities.Food) []domain.FoodResponse {
	res := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		res = append(res, toFoodResponse(f))
	}
	return res
}
