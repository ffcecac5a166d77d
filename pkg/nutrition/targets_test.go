package nutrition_test

import (
	"errors"
	"math"
	"testing"

	"TrackFit-Backend/pkg/nutrition"
)

func TestBMRMale(t *testing.T) {
	t.Parallel()
	bmr, err := nutrition.BMR(nutrition.Male, 80, 180, 30)
	if err != nil {
		t.Fatalf("bmr: %v", err)
	}
	want := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
	if math.Abs(bmr-want) > 0.001 {
		t.Fatalf("expected bmr %.3f, got %.3f", want, bmr)
	}
	if math.Abs(bmr-1853.632) > 0.001 {
		t.Fatalf("expected bmr 1853.632, got %.3f", bmr)
	}
}

func TestBMRFemale(t *testing.T) {
	t.Parallel()
	bmr, err := nutrition.BMR(nutrition.Female, 60, 165, 25)
	if err != nil {
		t.Fatalf("bmr: %v", err)
	}
	if math.Abs(bmr-1405.333) > 0.001 {
		t.Fatalf("expected bmr 1405.333, got %.3f", bmr)
	}
}

func TestCalculateTargetsLoss(t *testing.T) {
	t.Parallel()
	calc, err := nutrition.CalculateTargets(nutrition.Profile{
		HeightCm:      180,
		WeightKg:      80,
		Age:           30,
		Gender:        nutrition.Male,
		ActivityLevel: nutrition.Moderate,
		WeightGoal:    nutrition.Loss,
		WeightRate:    0.5,
	})
	if err != nil {
		t.Fatalf("calculate targets: %v", err)
	}

	if math.Abs(calc.MaintenanceCalories-calc.BMR*1.55) > 1e-9 {
		t.Fatalf("expected maintenance = bmr*1.55, got %.4f", calc.MaintenanceCalories)
	}
	if math.Abs(calc.DailyAdjustment-550) > 1e-9 {
		t.Fatalf("expected daily adjustment 550, got %.4f", calc.DailyAdjustment)
	}

	want := nutrition.Targets{Calories: 2323, Protein: 232, Carbs: 203, Fat: 65}
	if calc.Targets != want {
		t.Fatalf("expected %+v, got %+v", want, calc.Targets)
	}
	if calc.AdjustedCalories != want.Calories {
		t.Fatalf("expected adjusted calories %d, got %d", want.Calories, calc.AdjustedCalories)
	}
}

func TestCalculateTargetsGainAndMaintain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		profile nutrition.Profile
		want    nutrition.Targets
	}{
		{
			name: "gain",
			profile: nutrition.Profile{
				HeightCm: 180, WeightKg: 80, Age: 30,
				Gender:        nutrition.Male,
				ActivityLevel: nutrition.Sedentary,
				WeightGoal:    nutrition.Gain,
				WeightRate:    0.25,
			},
			want: nutrition.Targets{Calories: 2499, Protein: 187, Carbs: 312, Fat: 56},
		},
		{
			name: "maintain ignores rate",
			profile: nutrition.Profile{
				HeightCm: 165, WeightKg: 60, Age: 25,
				Gender:        nutrition.Female,
				ActivityLevel: nutrition.Light,
				WeightGoal:    nutrition.Maintain,
				WeightRate:    0.5,
			},
			want: nutrition.Targets{Calories: 1932, Protein: 145, Carbs: 193, Fat: 64},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			calc, err := nutrition.CalculateTargets(tc.profile)
			if err != nil {
				t.Fatalf("calculate targets: %v", err)
			}
			if calc.Targets != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, calc.Targets)
			}
		})
	}
}

func TestCalculateTargetsRateIsSignAgnostic(t *testing.T) {
	t.Parallel()
	base := nutrition.Profile{
		HeightCm: 170, WeightKg: 90, Age: 40,
		Gender:        nutrition.Male,
		ActivityLevel: nutrition.Active,
		WeightGoal:    nutrition.Loss,
		WeightRate:    0.25,
	}
	neg := base
	neg.WeightRate = -0.25

	a, err := nutrition.CalculateTargets(base)
	if err != nil {
		t.Fatalf("calculate targets: %v", err)
	}
	b, err := nutrition.CalculateTargets(neg)
	if err != nil {
		t.Fatalf("calculate targets: %v", err)
	}
	if a.Targets != b.Targets {
		t.Fatalf("expected identical targets, got %+v and %+v", a.Targets, b.Targets)
	}
	if a.Targets.Calories >= int(a.MaintenanceCalories) {
		t.Fatalf("expected a deficit, got %d vs maintenance %.2f", a.Targets.Calories, a.MaintenanceCalories)
	}
}

func TestCalculateTargetsMacrosFitBudget(t *testing.T) {
	t.Parallel()
	for _, goal := range []nutrition.WeightGoal{nutrition.Loss, nutrition.Gain, nutrition.Maintain} {
		for _, activity := range []nutrition.ActivityLevel{nutrition.Sedentary, nutrition.Light, nutrition.Moderate, nutrition.Active} {
			calc, err := nutrition.CalculateTargets(nutrition.Profile{
				HeightCm: 175, WeightKg: 72, Age: 35,
				Gender:        nutrition.Female,
				ActivityLevel: activity,
				WeightGoal:    goal,
				WeightRate:    0.5,
			})
			if err != nil {
				t.Fatalf("calculate targets: %v", err)
			}
			tg := calc.Targets
			recombined := tg.Protein*4 + tg.Carbs*4 + tg.Fat*9
			if diff := recombined - tg.Calories; diff > 10 || diff < -10 {
				t.Fatalf("%s/%s: macros recombine to %d kcal, budget %d", goal, activity, recombined, tg.Calories)
			}
		}
	}
}

func TestCalculateTargetsRejectsInvalidEnums(t *testing.T) {
	t.Parallel()
	valid := nutrition.Profile{
		HeightCm: 180, WeightKg: 80, Age: 30,
		Gender:        nutrition.Male,
		ActivityLevel: nutrition.Moderate,
		WeightGoal:    nutrition.Loss,
		WeightRate:    0.5,
	}

	badActivity := valid
	badActivity.ActivityLevel = "couch"
	if _, err := nutrition.CalculateTargets(badActivity); !errors.Is(err, nutrition.ErrInvalidActivityLevel) {
		t.Fatalf("expected ErrInvalidActivityLevel, got %v", err)
	}

	badGoal := valid
	badGoal.WeightGoal = "bulk"
	if _, err := nutrition.CalculateTargets(badGoal); !errors.Is(err, nutrition.ErrInvalidWeightGoal) {
		t.Fatalf("expected ErrInvalidWeightGoal, got %v", err)
	}

	badGender := valid
	badGender.Gender = ""
	if _, err := nutrition.CalculateTargets(badGender); !errors.Is(err, nutrition.ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
}

func TestParseEnums(t *testing.T) {
	t.Parallel()
	if g, err := nutrition.ParseGender(" Female "); err != nil || g != nutrition.Female {
		t.Fatalf("expected female, got %q (%v)", g, err)
	}
	if a, err := nutrition.ParseActivityLevel("MODERATE"); err != nil || a != nutrition.Moderate {
		t.Fatalf("expected moderate, got %q (%v)", a, err)
	}
	if _, err := nutrition.ParseActivityLevel("very_active"); !errors.Is(err, nutrition.ErrInvalidActivityLevel) {
		t.Fatalf("expected ErrInvalidActivityLevel, got %v", err)
	}
	if _, err := nutrition.ParseWeightGoal("cut"); !errors.Is(err, nutrition.ErrInvalidWeightGoal) {
		t.Fatalf("expected ErrInvalidWeightGoal, got %v", err)
	}
}

func TestDeriveWeightGoal(t *testing.T) {
	t.Parallel()
	if got := nutrition.DeriveWeightGoal(80, 75); got != nutrition.Loss {
		t.Fatalf("expected loss, got %s", got)
	}
	if got := nutrition.DeriveWeightGoal(60, 65); got != nutrition.Gain {
		t.Fatalf("expected gain, got %s", got)
	}
	if got := nutrition.DeriveWeightGoal(70, 70); got != nutrition.Maintain {
		t.Fatalf("expected maintain, got %s", got)
	}
}

func TestWeightRateAndWeeksToGoal(t *testing.T) {
	t.Parallel()
	if !nutrition.ValidWeightRate(0.25) || !nutrition.ValidWeightRate(0.5) {
		t.Fatalf("expected 0.25 and 0.5 to be valid")
	}
	if nutrition.ValidWeightRate(1) {
		t.Fatalf("expected 1 kg/week to be rejected")
	}
	if got := nutrition.WeeksToGoal(80, 75, 0.5); got != 10 {
		t.Fatalf("expected 10 weeks, got %d", got)
	}
	if got := nutrition.WeeksToGoal(80, 79.9, 0.25); got != 1 {
		t.Fatalf("expected 1 week, got %d", got)
	}
	if got := nutrition.WeeksToGoal(0, 75, 0.5); got != 0 {
		t.Fatalf("expected 0 weeks without a weight, got %d", got)
	}
}
