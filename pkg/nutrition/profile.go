package nutrition

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidActivityLevel = errors.New("activity level must be sedentary, light, moderate or active")
	ErrInvalidWeightGoal    = errors.New("weight goal must be loss, gain or maintain")
	ErrInvalidWeightRate    = errors.New("weight rate must be 0.25 or 0.5 kg per week")
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

type ActivityLevel string

const (
	Sedentary ActivityLevel = "sedentary"
	Light     ActivityLevel = "light"
	Moderate  ActivityLevel = "moderate"
	Active    ActivityLevel = "active"
)

// activityMultipliers is the only place activity levels are defined; Valid
// and Multiplier both read from it.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	Active:    1.725,
}

func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

func (a ActivityLevel) Multiplier() (float64, error) {
	m, ok := activityMultipliers[a]
	if !ok {
		return 0, ErrInvalidActivityLevel
	}
	return m, nil
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	a := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", ErrInvalidActivityLevel
	}
	return a, nil
}

type WeightGoal string

const (
	Loss     WeightGoal = "loss"
	Gain     WeightGoal = "gain"
	Maintain WeightGoal = "maintain"
)

func (w WeightGoal) Valid() bool {
	_, ok := macroRatios[w]
	return ok
}

func ParseWeightGoal(s string) (WeightGoal, error) {
	w := WeightGoal(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", ErrInvalidWeightGoal
	}
	return w, nil
}

// DeriveWeightGoal picks the goal from the current and target body weight.
// The goal is never chosen by the user directly.
func DeriveWeightGoal(weight, targetWeight float64) WeightGoal {
	switch {
	case targetWeight < weight:
		return Loss
	case targetWeight > weight:
		return Gain
	default:
		return Maintain
	}
}

// Allowed weekly rates of change, in kg.
var WeightRates = []float64{0.25, 0.5}

func ValidWeightRate(rate float64) bool {
	for _, r := range WeightRates {
		if rate == r {
			return true
		}
	}
	return false
}

// WeeksToGoal estimates how many whole weeks it takes to move from weight
// to targetWeight at rate kg/week.
func WeeksToGoal(weight, targetWeight, rate float64) int {
	rate = math.Abs(rate)
	if weight == 0 || targetWeight == 0 || rate == 0 {
		return 0
	}
	return int(math.Ceil(math.Abs(targetWeight-weight) / rate))
}

type Profile struct {
	HeightCm      float64
	WeightKg      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	WeightGoal    WeightGoal
	// kg per week; the sign is ignored, WeightGoal decides the direction.
	WeightRate float64
}

func (p Profile) Validate() error {
	if !p.Gender.Valid() {
		return ErrInvalidGender
	}
	if !p.ActivityLevel.Valid() {
		return ErrInvalidActivityLevel
	}
	if !p.WeightGoal.Valid() {
		return ErrInvalidWeightGoal
	}
	return nil
}
