package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"TrackFit-Backend/pkg/nutrition"
)

var (
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessAddMeal         = "meal added successfully"
	MessageSuccessUpdateMeal      = "meal updated successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessUpdateMealGroup = "meal group updated successfully"
	MessageSuccessUploadMealImage = "meal image uploaded successfully"

	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedAddMeal         = "failed to add meal"
	MessageFailedUpdateMeal      = "failed to update meal"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedUpdateMealGroup = "failed to update meal group"
	MessageFailedUploadMealImage = "failed to upload meal image"

	ErrMealNotFound           = errors.New("meal not found")
	ErrMealGroupNotFound      = errors.New("meal group not found")
	ErrUnauthorizedMealAccess = errors.New("unauthorized access to meal")
	ErrMealGroupDateMismatch  = errors.New("meal group belongs to another date")
	ErrInvalidImageFormat     = errors.New("invalid image format")
	ErrMissingNutrition       = errors.New("meal without a food needs calories, protein, carbs and fat")
	ErrForeignMealImage       = errors.New("image belongs to another user")
	ErrEmptyMealGroupName     = errors.New("meal group name is empty")
	ErrMealGroupNameTaken     = errors.New("meal group name already used on this date")
)

// DefaultMealGroupPrefix names groups created without an explicit name:
// "Meal 1", "Meal 2", ...
const DefaultMealGroupPrefix = "Meal"

type (
	AddMealRequest struct {
		Date          string   `json:"date" validate:"required,date"`
		MealGroupID   string   `json:"meal_group_id" validate:"omitempty,uuid"`
		MealGroupName string   `json:"meal_group_name" validate:"omitempty,max=100"`
		FoodID        string   `json:"food_id" validate:"omitempty,uuid"`
		Name          string   `json:"name" validate:"required_without=FoodID,max=200"`
		Weight        *float64 `json:"weight" validate:"omitempty,gte=0"`
		Unit          string   `json:"unit" validate:"omitempty,max=64"`
		Calories      *int     `json:"calories" validate:"omitempty,gte=0"`
		Protein       *int     `json:"protein" validate:"omitempty,gte=0"`
		Carbs         *int     `json:"carbs" validate:"omitempty,gte=0"`
		Fat           *int     `json:"fat" validate:"omitempty,gte=0"`
		ImageURL      string   `json:"image_url" validate:"omitempty,url"`
	}

	UpdateMealRequest struct {
		FoodID   *string  `json:"food_id" validate:"omitempty,uuid"`
		Name     string   `json:"name" validate:"omitempty,max=200"`
		Weight   *float64 `json:"weight" validate:"omitempty,gte=0"`
		Unit     *string  `json:"unit" validate:"omitempty,max=64"`
		Calories *int     `json:"calories" validate:"omitempty,gte=0"`
		Protein  *int     `json:"protein" validate:"omitempty,gte=0"`
		Carbs    *int     `json:"carbs" validate:"omitempty,gte=0"`
		Fat      *int     `json:"fat" validate:"omitempty,gte=0"`
		ImageURL *string  `json:"image_url" validate:"omitempty,url"`
	}

	UpdateMealGroupRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	UploadMealImageRequest struct {
		MealID string                `json:"meal_id" form:"meal_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MealResponse struct {
		ID          string    `json:"id"`
		MealGroupID string    `json:"meal_group_id"`
		FoodID      string    `json:"food_id,omitempty"`
		Name        string    `json:"name"`
		Calories    int       `json:"calories"`
		Protein     int       `json:"protein"`
		Carbs       int       `json:"carbs"`
		Fat         int       `json:"fat"`
		Weight      *float64  `json:"weight,omitempty"`
		Unit        string    `json:"unit,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	MealGroupResponse struct {
		ID     string              `json:"id"`
		Name   string              `json:"name"`
		Date   string              `json:"date"`
		Meals  []MealResponse      `json:"meals"`
		Totals nutrition.Nutrition `json:"totals"`
	}
)
