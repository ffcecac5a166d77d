// Package summary assembles the daily dashboard: what was eaten against the
// user's targets, plus water intake.
package summary

import (
	"context"
	"errors"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/pkg/meal"
	"TrackFit-Backend/pkg/nutrition"
	"TrackFit-Backend/pkg/target"
	"TrackFit-Backend/pkg/water"

	"gorm.io/gorm"
)

type (
	SummaryService interface {
		GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error)
	}

	summaryService struct {
		mealRepository   meal.MealRepository
		targetRepository target.TargetRepository
		waterRepository  water.WaterRepository
	}
)

func NewSummaryService(mealRepository meal.MealRepository, targetRepository target.TargetRepository, waterRepository water.WaterRepository) SummaryService {
	return &summaryService{
		mealRepository:   mealRepository,
		targetRepository: targetRepository,
		waterRepository:  waterRepository,
	}
}

func (s *summaryService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DailySummaryResponse{}, domain.ErrInvalidDate
	}

	groups, err := s.mealRepository.GetMealGroupsForDate(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	res := domain.DailySummaryResponse{Date: date}
	var eaten []nutrition.Nutrition
	for _, g := range groups {
		if len(g.Meals) == 0 {
			continue
		}
		res.MealGroupCount++
		for _, m := range g.Meals {
			res.MealCount++
			eaten = append(eaten, nutrition.Nutrition{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat})
		}
	}
	total := nutrition.Sum(eaten...)

	var goal nutrition.Targets
	targets, err := s.targetRepository.GetTargetsByUserID(ctx, userID)
	switch {
	case err == nil:
		res.HasTargets = true
		goal = nutrition.Targets{Calories: targets.Calories, Protein: targets.Protein, Carbs: targets.Carbs, Fat: targets.Fat}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.DailySummaryResponse{}, err
	}

	res.Calories = progress(total.Calories, goal.Calories)
	res.Protein = progress(total.Protein, goal.Protein)
	res.Carbs = progress(total.Carbs, goal.Carbs)
	res.Fat = progress(total.Fat, goal.Fat)

	if p, c, f, ok := nutrition.MacroDistribution(total.Protein, total.Carbs, total.Fat); ok {
		res.MacroDistribution = &domain.MacroDistributionResponse{Protein: p, Carbs: c, Fat: f}
	}

	waterAmount := 0
	log, err := s.waterRepository.GetWaterLog(ctx, userID, date)
	switch {
	case err == nil:
		waterAmount = log.Amount
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.DailySummaryResponse{}, err
	}
	res.Water = water.NewWaterLogResponse(date, waterAmount)

	return res, nil
}

func progress(amount, target int) domain.NutrientProgress {
	return domain.NutrientProgress{
		Amount:  amount,
		Target:  target,
		Percent: nutrition.Progress(float64(amount), float64(target)),
	}
}
