package domain

var (
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"
	MessageFailedGetDailySummary  = "failed to retrieve daily summary"
)

type (
	NutrientProgress struct {
		Amount  int `json:"amount"`
		Target  int `json:"target"`
		Percent int `json:"percent"`
	}

	MacroDistributionResponse struct {
		Protein int `json:"protein"`
		Carbs   int `json:"carbs"`
		Fat     int `json:"fat"`
	}

	DailySummaryResponse struct {
		Date              string                     `json:"date"`
		HasTargets        bool                       `json:"has_targets"`
		Calories          NutrientProgress           `json:"calories"`
		Protein           NutrientProgress           `json:"protein"`
		Carbs             NutrientProgress           `json:"carbs"`
		Fat               NutrientProgress           `json:"fat"`
		MacroDistribution *MacroDistributionResponse `json:"macro_distribution,omitempty"`
		Water             WaterLogResponse           `json:"water"`
		MealGroupCount    int                        `json:"meal_group_count"`
		MealCount         int                        `json:"meal_count"`
	}
)
