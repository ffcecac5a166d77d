package target

import (
	"context"
	"errors"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/entities"
	"TrackFit-Backend/internal/utils/mailing"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TargetService interface {
		SubmitQuestionnaire(ctx context.Context, userID string, email string, req domain.QuestionnaireRequest) (domain.QuestionnaireResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		GetTargets(ctx context.Context, userID string) (domain.TargetsResponse, error)
		PreviewTargets(ctx context.Context, req domain.QuestionnaireRequest) (domain.TargetCalculationResponse, error)
		RecalculateTargets(ctx context.Context, userID string) (domain.TargetsResponse, error)
	}

	targetService struct {
		targetRepository TargetRepository
		mailer           mailing.Mailer
	}
)

// NewTargetService accepts a nil mailer, in which case no summary email is
// sent.
func NewTargetService(targetRepository TargetRepository, mailer mailing.Mailer) TargetService {
	return &targetService{
		targetRepository: targetRepository,
		mailer:           mailer,
	}
}

func (s *targetService) SubmitQuestionnaire(ctx context.Context, userID string, email string, req domain.QuestionnaireRequest) (domain.QuestionnaireResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.QuestionnaireResponse{}, domain.ErrParseUUID
	}

	profile, err := profileFromRequest(req)
	if err != nil {
		return domain.QuestionnaireResponse{}, err
	}
	calc, err := calculate(userID, profile)
	if err != nil {
		return domain.QuestionnaireResponse{}, err
	}

	profileEntity := &entities.UserProfile{
		ID:            userUUID,
		Height:        req.Height,
		Weight:        req.Weight,
		TargetWeight:  req.TargetWeight,
		Age:           req.Age,
		Gender:        string(profile.Gender),
		ActivityLevel: string(profile.ActivityLevel),
		WeightGoal:    string(profile.WeightGoal),
		WeightRate:    req.WeightRate,
	}

	var targets *entities.UserTarget
	err = s.targetRepository.Transaction(ctx, func(repo TargetRepository) error {
		_, err := repo.GetProfileByUserID(ctx, userID)
		if err == nil {
			return domain.ErrProfileAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := repo.CreateProfile(ctx, profileEntity); err != nil {
			return err
		}
		if err := repo.UpsertTargets(ctx, targetEntity(userUUID, calc.Targets)); err != nil {
			return err
		}
		targets, err = repo.GetTargetsByUserID(ctx, userID)
		return err
	})
	if err != nil {
		return domain.QuestionnaireResponse{}, err
	}

	weeks := nutrition.WeeksToGoal(req.Weight, req.TargetWeight, req.WeightRate)
	if s.mailer != nil && email != "" {
		go s.sendTargetSummary(email, profile.WeightGoal, calc, weeks)
	}

	return domain.QuestionnaireResponse{
		Profile:     toProfileResponse(profileEntity),
		Targets:     toTargetsResponse(targets),
		WeeksToGoal: weeks,
		Calculation: calc,
	}, nil
}

func (s *targetService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.targetRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *targetService) GetTargets(ctx context.Context, userID string) (domain.TargetsResponse, error) {
	targets, err := s.targetRepository.GetTargetsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TargetsResponse{}, domain.ErrTargetsNotFound
		}
		return domain.TargetsResponse{}, err
	}
	return toTargetsResponse(targets), nil
}

func (s *targetService) PreviewTargets(ctx context.Context, req domain.QuestionnaireRequest) (domain.TargetCalculationResponse, error) {
	profile, err := profileFromRequest(req)
	if err != nil {
		return domain.TargetCalculationResponse{}, err
	}
	calc, err := nutrition.CalculateTargets(profile)
	if err != nil {
		return domain.TargetCalculationResponse{}, err
	}
	return domain.TargetCalculationResponse{
		WeightGoal:  string(profile.WeightGoal),
		WeeksToGoal: nutrition.WeeksToGoal(req.Weight, req.TargetWeight, req.WeightRate),
		Calculation: calc,
	}, nil
}

func (s *targetService) RecalculateTargets(ctx context.Context, userID string) (domain.TargetsResponse, error) {
	stored, err := s.targetRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TargetsResponse{}, domain.ErrProfileNotFound
		}
		return domain.TargetsResponse{}, err
	}

	profile, err := profileFromEntity(stored)
	if err != nil {
		return domain.TargetsResponse{}, err
	}
	calc, err := calculate(userID, profile)
	if err != nil {
		return domain.TargetsResponse{}, err
	}

	if err := s.targetRepository.UpsertTargets(ctx, targetEntity(stored.ID, calc.Targets)); err != nil {
		return domain.TargetsResponse{}, err
	}
	return s.GetTargets(ctx, userID)
}

func (s *targetService) sendTargetSummary(email string, goal nutrition.WeightGoal, calc nutrition.TargetCalculation, weeks int) {
	body, err := renderTargetSummary(goal, calc, weeks)
	if err != nil {
		log.Errorf("failed to render target summary email: %v", err)
		return
	}
	if err := s.mailer.SendMail(email, targetSummarySubject, body); err != nil {
		log.Errorf("failed to send target summary email to %s: %v", email, err)
	}
}

func calculate(userID string, profile nutrition.Profile) (nutrition.TargetCalculation, error) {
	calc, err := nutrition.CalculateTargets(profile)
	if err != nil {
		return nutrition.TargetCalculation{}, err
	}
	log.Debugw("derived nutrition targets",
		"user_id", userID,
		"bmr", calc.BMR,
		"maintenance_calories", calc.MaintenanceCalories,
		"adjusted_calories", calc.AdjustedCalories,
	)
	return calc, nil
}

func profileFromRequest(req domain.QuestionnaireRequest) (nutrition.Profile, error) {
	gender, err := nutrition.ParseGender(req.Gender)
	if err != nil {
		return nutrition.Profile{}, err
	}
	activity, err := nutrition.ParseActivityLevel(req.ActivityLevel)
	if err != nil {
		return nutrition.Profile{}, err
	}
	if !nutrition.ValidWeightRate(req.WeightRate) {
		return nutrition.Profile{}, nutrition.ErrInvalidWeightRate
	}
	return nutrition.Profile{
		HeightCm:      req.Height,
		WeightKg:      req.Weight,
		Age:           req.Age,
		Gender:        gender,
		ActivityLevel: activity,
		WeightGoal:    nutrition.DeriveWeightGoal(req.Weight, req.TargetWeight),
		WeightRate:    req.WeightRate,
	}, nil
}

func profileFromEntity(p *entities.UserProfile) (nutrition.Profile, error) {
	gender, err := nutrition.ParseGender(p.Gender)
	if err != nil {
		return nutrition.Profile{}, err
	}
	activity, err := nutrition.ParseActivityLevel(p.ActivityLevel)
	if err != nil {
		return nutrition.Profile{}, err
	}
	goal, err := nutrition.ParseWeightGoal(p.WeightGoal)
	if err != nil {
		return nutrition.Profile{}, err
	}
	return nutrition.Profile{
		HeightCm:      p.Height,
		WeightKg:      p.Weight,
		Age:           p.Age,
		Gender:        gender,
		ActivityLevel: activity,
		WeightGoal:    goal,
		WeightRate:    p.WeightRate,
	}, nil
}

func targetEntity(userID uuid.UUID, t nutrition.Targets) *entities.UserTarget {
	return &entities.UserTarget{
		UserID:   userID,
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
	}
}

func toProfileResponse(p *entities.UserProfile) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:            p.ID.String(),
		Height:        p.Height,
		Weight:        p.Weight,
		TargetWeight:  p.TargetWeight,
		Age:           p.Age,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		WeightGoal:    p.WeightGoal,
		WeightRate:    p.WeightRate,
		CreatedAt:     p.CreatedAt,
	}
}

func toTargetsResponse(t *entities.UserTarget) domain.TargetsResponse {
	return domain.TargetsResponse{
		Calories:  t.Calories,
		Protein:   t.Protein,
		Carbs:     t.Carbs,
		Fat:       t.Fat,
		UpdatedAt: t.UpdatedAt,
	}
}
