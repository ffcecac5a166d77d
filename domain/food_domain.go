package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoods            = "foods retrieved successfully"
	MessageSuccessSearchFoods         = "foods searched successfully"
	MessageSuccessGetFood             = "food retrieved successfully"
	MessageSuccessGetMeasurementUnits = "measurement units retrieved successfully"
	MessageSuccessCalculateNutrition  = "nutrition calculated successfully"

	MessageFailedGetFoods            = "failed to retrieve foods"
	MessageFailedSearchFoods         = "failed to search foods"
	MessageFailedGetFood             = "failed to retrieve food"
	MessageFailedGetMeasurementUnits = "failed to retrieve measurement units"
	MessageFailedCalculateNutrition  = "failed to calculate nutrition"

	ErrFoodNotFound     = errors.New("food not found")
	ErrEmptySearchQuery = errors.New("search query is empty")
)

const DefaultFoodSearchLimit = 8

type (
	MeasurementUnitResponse struct {
		Unit     string  `json:"unit"`
		Grams    float64 `json:"grams"`
		Implicit bool    `json:"implicit"`
	}

	FoodResponse struct {
		ID               string                    `json:"id"`
		NameHe           string                    `json:"name_he"`
		NameEn           string                    `json:"name_en"`
		Calories         float64                   `json:"calories"`
		Protein          float64                   `json:"protein"`
		Carbs            float64                   `json:"carbs"`
		Fat              float64                   `json:"fat"`
		ImageURL         string                    `json:"image_url,omitempty"`
		MeasurementUnits []MeasurementUnitResponse `json:"measurement_units"`
	}

	CalculateNutritionRequest struct {
		Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
		Unit   string   `json:"unit" validate:"omitempty,max=64"`
	}

	NutritionResponse struct {
		FoodID   string  `json:"food_id"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Calories int     `json:"calories"`
		Protein  int     `json:"protein"`
		Carbs    int     `json:"carbs"`
		Fat      int     `json:"fat"`
	}
)
