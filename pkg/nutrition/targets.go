// Package nutrition holds the calorie and macro arithmetic behind TrackFit:
// daily targets derived from a body profile, and the nutrition of a serving
// derived from a food's per-100g reference values.
//
// Everything here is pure. Functions can be called concurrently and are
// re-run on every request rather than cached.
package nutrition

import "math"

const (
	// KcalPerKg is the energy of roughly one kilogram of body mass.
	KcalPerKg = 7700.0

	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

type MacroRatios struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

var macroRatios = map[WeightGoal]MacroRatios{
	Loss:     {Protein: 0.40, Carbs: 0.35, Fat: 0.25},
	Gain:     {Protein: 0.30, Carbs: 0.50, Fat: 0.20},
	Maintain: {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
}

func (w WeightGoal) Ratios() (MacroRatios, error) {
	r, ok := macroRatios[w]
	if !ok {
		return MacroRatios{}, ErrInvalidWeightGoal
	}
	return r, nil
}

type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// TargetCalculation carries every intermediate value of the derivation next
// to the final targets.
type TargetCalculation struct {
	BMR                 float64     `json:"bmr"`
	ActivityMultiplier  float64     `json:"activity_multiplier"`
	MaintenanceCalories float64     `json:"maintenance_calories"`
	DailyAdjustment     float64     `json:"daily_adjustment"`
	AdjustedCalories    int         `json:"adjusted_calories"`
	Ratios              MacroRatios `json:"ratios"`
	Targets             Targets     `json:"targets"`
}

// BMR is the revised Harris-Benedict basal metabolic rate in kcal/day.
func BMR(gender Gender, weightKg, heightCm float64, age int) (float64, error) {
	a := float64(age)
	switch gender {
	case Male:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*a, nil
	case Female:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*a, nil
	default:
		return 0, ErrInvalidGender
	}
}

// DailyAdjustment converts a weekly weight change rate into kcal/day.
func DailyAdjustment(weightRate float64) float64 {
	return math.Abs(weightRate) * KcalPerKg / 7
}

func CalculateTargets(p Profile) (TargetCalculation, error) {
	if err := p.Validate(); err != nil {
		return TargetCalculation{}, err
	}

	bmr, err := BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
	if err != nil {
		return TargetCalculation{}, err
	}
	multiplier, err := p.ActivityLevel.Multiplier()
	if err != nil {
		return TargetCalculation{}, err
	}
	ratios, err := p.WeightGoal.Ratios()
	if err != nil {
		return TargetCalculation{}, err
	}

	maintenance := bmr * multiplier
	adjustment := DailyAdjustment(p.WeightRate)

	calories := maintenance
	switch p.WeightGoal {
	case Loss:
		calories = maintenance - adjustment
	case Gain:
		calories = maintenance + adjustment
	case Maintain:
		adjustment = 0
	}
	target := roundHalfUp(calories)

	return TargetCalculation{
		BMR:                 bmr,
		ActivityMultiplier:  multiplier,
		MaintenanceCalories: maintenance,
		DailyAdjustment:     adjustment,
		AdjustedCalories:    target,
		Ratios:              ratios,
		Targets:             SplitMacros(target, ratios),
	}, nil
}

// SplitMacros divides a calorie budget into protein, carbs and fat grams.
func SplitMacros(calories int, ratios MacroRatios) Targets {
	c := float64(calories)
	return Targets{
		Calories: calories,
		Protein:  roundHalfUp(c * ratios.Protein / KcalPerGramProtein),
		Carbs:    roundHalfUp(c * ratios.Carbs / KcalPerGramCarbs),
		Fat:      roundHalfUp(c * ratios.Fat / KcalPerGramFat),
	}
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
