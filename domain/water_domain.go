package domain

import "errors"

var (
	MessageSuccessGetWaterLog   = "water log retrieved successfully"
	MessageSuccessSetWaterLog   = "water log saved successfully"
	MessageSuccessAddWater      = "water added successfully"
	MessageSuccessClearWaterLog = "water log cleared successfully"

	MessageFailedGetWaterLog   = "failed to retrieve water log"
	MessageFailedSetWaterLog   = "failed to save water log"
	MessageFailedAddWater      = "failed to add water"
	MessageFailedClearWaterLog = "failed to clear water log"

	ErrInvalidWaterAmount = errors.New("water amount must be positive")
)

const DailyWaterGoalML = 2500

// QuickAddWaterAmounts are the preset serving sizes in ml: small glass,
// can, regular bottle.
var QuickAddWaterAmounts = []int{200, 330, 500}

type (
	SetWaterLogRequest struct {
		Date   string `json:"date" validate:"required,date"`
		Amount *int   `json:"amount" validate:"required,gte=0"`
	}

	AddWaterRequest struct {
		Date   string `json:"date" validate:"required,date"`
		Amount int    `json:"amount" validate:"required,gt=0"`
	}

	WaterLogResponse struct {
		Date            string `json:"date"`
		Amount          int    `json:"amount"`
		Goal            int    `json:"goal"`
		Progress        int    `json:"progress"`
		QuickAddAmounts []int  `json:"quick_add_amounts"`
	}
)
