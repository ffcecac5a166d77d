package water

import (
	"context"
	"errors"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/entities"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WaterService interface {
		GetWaterLog(ctx context.Context, userID string, date string) (domain.WaterLogResponse, error)
		SetWaterLog(ctx context.Context, userID string, req domain.SetWaterLogRequest) (domain.WaterLogResponse, error)
		AddWater(ctx context.Context, userID string, req domain.AddWaterRequest) (domain.WaterLogResponse, error)
		ClearWaterLog(ctx context.Context, userID string, date string) (domain.WaterLogResponse, error)
	}

	waterService struct {
		waterRepository WaterRepository
	}
)

func NewWaterService(waterRepository WaterRepository) WaterService {
	return &waterService{
		waterRepository: waterRepository,
	}
}

func (s *waterService) GetWaterLog(ctx context.Context, userID string, date string) (domain.WaterLogResponse, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.WaterLogResponse{}, domain.ErrInvalidDate
	}

	log, err := s.waterRepository.GetWaterLog(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewWaterLogResponse(date, 0), nil
		}
		return domain.WaterLogResponse{}, err
	}
	return NewWaterLogResponse(date, log.Amount), nil
}

func (s *waterService) SetWaterLog(ctx context.Context, userID string, req domain.SetWaterLogRequest) (domain.WaterLogResponse, error) {
	if req.Amount == nil || *req.Amount < 0 {
		return domain.WaterLogResponse{}, domain.ErrInvalidWaterAmount
	}
	log, err := newWaterLog(userID, req.Date, *req.Amount)
	if err != nil {
		return domain.WaterLogResponse{}, err
	}

	if err := s.waterRepository.UpsertWaterLog(ctx, log); err != nil {
		return domain.WaterLogResponse{}, err
	}
	return s.GetWaterLog(ctx, userID, req.Date)
}

func (s *waterService) AddWater(ctx context.Context, userID string, req domain.AddWaterRequest) (domain.WaterLogResponse, error) {
	if req.Amount <= 0 {
		return domain.WaterLogResponse{}, domain.ErrInvalidWaterAmount
	}
	log, err := newWaterLog(userID, req.Date, req.Amount)
	if err != nil {
		return domain.WaterLogResponse{}, err
	}

	if err := s.waterRepository.AddWater(ctx, log); err != nil {
		return domain.WaterLogResponse{}, err
	}
	return s.GetWaterLog(ctx, userID, req.Date)
}

func (s *waterService) ClearWaterLog(ctx context.Context, userID string, date string) (domain.WaterLogResponse, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.WaterLogResponse{}, domain.ErrInvalidDate
	}
	if err := s.waterRepository.DeleteWaterLog(ctx, userID, date); err != nil {
		return domain.WaterLogResponse{}, err
	}
	return NewWaterLogResponse(date, 0), nil
}

func NewWaterLogResponse(date string, amount int) domain.WaterLogResponse {
	return domain.WaterLogResponse{
		Date:            date,
		Amount:          amount,
		Goal:            domain.DailyWaterGoalML,
		Progress:        nutrition.Progress(float64(amount), domain.DailyWaterGoalML),
		QuickAddAmounts: domain.QuickAddWaterAmounts,
	}
}

func newWaterLog(userID string, date string, amount int) (*entities.WaterLog, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &entities.WaterLog{
		UserID: userUUID,
		Date:   date,
		Amount: amount,
	}, nil
}
