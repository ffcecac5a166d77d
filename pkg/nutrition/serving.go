package nutrition

import (
	"errors"
	"math"
)

var (
	ErrUnitUnavailable = errors.New("food has no measurement units besides grams")
	ErrUnitNotFound    = errors.New("measurement unit not found for food")
	ErrInvalidAmount   = errors.New("amount must be zero or positive")
)

// GramsUnit is the reserved unit every food supports, one unit per gram.
const GramsUnit = "grams"

const (
	DefaultAmount = 100.0
	DefaultUnit   = GramsUnit
)

var gramsMeasurement = MeasurementUnit{Unit: GramsUnit, Grams: 1}

type MeasurementUnit struct {
	Unit  string  `json:"unit"`
	Grams float64 `json:"grams"`
}

// Food is the per-100g reference record of a food.
type Food struct {
	Calories         float64
	Protein          float64
	Carbs            float64
	Fat              float64
	MeasurementUnits []MeasurementUnit
}

type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Units lists the units a serving of f can be expressed in: the implicit
// grams unit first, then the declared units in order. A declared unit named
// like the grams unit is ignored.
func (f Food) Units() []MeasurementUnit {
	units := make([]MeasurementUnit, 0, len(f.MeasurementUnits)+1)
	units = append(units, gramsMeasurement)
	for _, mu := range f.MeasurementUnits {
		if mu.Unit == GramsUnit {
			continue
		}
		units = append(units, mu)
	}
	return units
}

// UnitGrams returns how many grams one unit named unit weighs for f.
func (f Food) UnitGrams(unit string) (float64, error) {
	for _, mu := range f.Units() {
		if mu.Unit == unit {
			return mu.Grams, nil
		}
	}
	if len(f.Units()) == 1 {
		return 0, ErrUnitUnavailable
	}
	return 0, ErrUnitNotFound
}

// CalculateNutrition returns the calories and macros consumed when eating
// amount units of f.
func CalculateNutrition(f Food, amount float64, unit string) (Nutrition, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Nutrition{}, ErrInvalidAmount
	}

	grams, err := f.UnitGrams(unit)
	if err != nil {
		return Nutrition{}, err
	}

	multiplier := amount * grams / 100
	return Nutrition{
		Calories: roundHalfUp(f.Calories * multiplier),
		Protein:  roundHalfUp(f.Protein * multiplier),
		Carbs:    roundHalfUp(f.Carbs * multiplier),
		Fat:      roundHalfUp(f.Fat * multiplier),
	}, nil
}
