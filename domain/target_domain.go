package domain

import (
	"errors"
	"time"

	"TrackFit-Backend/pkg/nutrition"
)

var (
	MessageSuccessSubmitQuestionnaire = "questionnaire submitted and targets calculated"
	MessageSuccessGetProfile          = "profile retrieved successfully"
	MessageSuccessGetTargets          = "targets retrieved successfully"
	MessageSuccessPreviewTargets      = "targets calculated successfully"
	MessageSuccessRecalculateTargets  = "targets recalculated successfully"

	MessageFailedSubmitQuestionnaire = "failed to submit questionnaire"
	MessageFailedGetProfile          = "failed to retrieve profile"
	MessageFailedGetTargets          = "failed to retrieve targets"
	MessageFailedPreviewTargets      = "failed to calculate targets"
	MessageFailedRecalculateTargets  = "failed to recalculate targets"

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrTargetsNotFound      = errors.New("targets not found")
)

type (
	QuestionnaireRequest struct {
		Height        float64 `json:"height" validate:"required,gte=100,lte=250"`
		Weight        float64 `json:"weight" validate:"required,gte=30,lte=300"`
		TargetWeight  float64 `json:"target_weight" validate:"required,gte=30,lte=300"`
		Age           int     `json:"age" validate:"required,gte=16,lte=120"`
		Gender        string  `json:"gender" validate:"required,gender"`
		ActivityLevel string  `json:"activity_level" validate:"required,activity_level"`
		WeightRate    float64 `json:"weight_rate" validate:"required,weight_rate"`
	}

	ProfileResponse struct {
		ID            string    `json:"id"`
		Height        float64   `json:"height"`
		Weight        float64   `json:"weight"`
		TargetWeight  float64   `json:"target_weight"`
		Age           int       `json:"age"`
		Gender        string    `json:"gender"`
		ActivityLevel string    `json:"activity_level"`
		WeightGoal    string    `json:"weight_goal"`
		WeightRate    float64   `json:"weight_rate"`
		CreatedAt     time.Time `json:"created_at"`
	}

	TargetsResponse struct {
		Calories  int       `json:"calories"`
		Protein   int       `json:"protein"`
		Carbs     int       `json:"carbs"`
		Fat       int       `json:"fat"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	TargetCalculationResponse struct {
		WeightGoal  string                      `json:"weight_goal"`
		WeeksToGoal int                         `json:"weeks_to_goal"`
		Calculation nutrition.TargetCalculation `json:"calculation"`
	}

	QuestionnaireResponse struct {
		Profile     ProfileResponse             `json:"profile"`
		Targets     TargetsResponse             `json:"targets"`
		WeeksToGoal int                         `json:"weeks_to_goal"`
		Calculation nutrition.TargetCalculation `json:"calculation"`
	}
)
