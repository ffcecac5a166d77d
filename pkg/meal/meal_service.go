package meal

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/entities"
	"TrackFit-Backend/internal/utils/storage"
	"TrackFit-Backend/pkg/food"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	mealImageFolder = "meals"

	// Concurrent adds may race to create the same default group.
	maxGroupAttempts = 3
)

var defaultGroupName = regexp.MustCompile(`^` + domain.DefaultMealGroupPrefix + ` (\d+)$`)

type (
	MealService interface {
		GetMealsForDate(ctx context.Context, userID string, date string) ([]domain.MealGroupResponse, error)
		AddMeal(ctx context.Context, userID string, req domain.AddMealRequest) (domain.MealResponse, error)
		UpdateMeal(ctx context.Context, userID string, mealID string, req domain.UpdateMealRequest) (domain.MealResponse, error)
		DeleteMeal(ctx context.Context, userID string, mealID string) error
		UpdateMealGroup(ctx context.Context, userID string, groupID string, req domain.UpdateMealGroupRequest) (domain.MealGroupResponse, error)
		UploadMealImage(ctx context.Context, userID string, req domain.UploadMealImageRequest) (domain.MealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		foodRepository food.FoodRepository
		s3             storage.AwsS3
	}
)

func NewMealService(mealRepository MealRepository, foodRepository food.FoodRepository, s3 storage.AwsS3) MealService {
	return &mealService{
		mealRepository: mealRepository,
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *mealService) GetMealsForDate(ctx context.Context, userID string, date string) ([]domain.MealGroupResponse, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	groups, err := s.mealRepository.GetMealGroupsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealGroupResponse, 0, len(groups))
	for _, g := range groups {
		if len(g.Meals) == 0 {
			continue
		}
		res = append(res, toMealGroupResponse(g))
	}
	return res, nil
}

func (s *mealService) AddMeal(ctx context.Context, userID string, req domain.AddMealRequest) (domain.MealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return domain.MealResponse{}, domain.ErrInvalidDate
	}
	if err := s.checkImageURL(userID, req.ImageURL); err != nil {
		return domain.MealResponse{}, err
	}

	meal := &entities.Meal{
		Name:     strings.TrimSpace(req.Name),
		Weight:   req.Weight,
		ImageURL: req.ImageURL,
	}
	if req.Unit != "" {
		unit := req.Unit
		meal.Unit = &unit
	}

	if req.FoodID != "" {
		foodID, err := uuid.Parse(req.FoodID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		meal.FoodID = &foodID
		if err := s.applyFoodNutrition(ctx, meal); err != nil {
			return domain.MealResponse{}, err
		}
	} else {
		if req.Calories == nil || req.Protein == nil || req.Carbs == nil || req.Fat == nil {
			return domain.MealResponse{}, domain.ErrMissingNutrition
		}
		meal.Calories = *req.Calories
		meal.Protein = *req.Protein
		meal.Carbs = *req.Carbs
		meal.Fat = *req.Fat
	}

	for attempt := 1; attempt <= maxGroupAttempts; attempt++ {
		err = s.mealRepository.Transaction(ctx, func(repo MealRepository) error {
			group, err := resolveMealGroup(ctx, repo, userUUID, req)
			if err != nil {
				return err
			}
			meal.MealGroupID = group.ID
			return repo.CreateMeal(ctx, meal)
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Debugw("meal group created concurrently, retrying", "user_id", userID, "date", req.Date, "attempt", attempt)
		meal.ID = uuid.Nil
	}
	if err != nil {
		return domain.MealResponse{}, err
	}

	return toMealResponse(meal), nil
}

func (s *mealService) UpdateMeal(ctx context.Context, userID string, mealID string, req domain.UpdateMealRequest) (domain.MealResponse, error) {
	meal, err := s.getOwnedMeal(ctx, userID, mealID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	// Work on a copy so a failed recalculation leaves the stored meal as is.
	updated := *meal
	updated.MealGroup = nil
	updated.Food = nil

	if req.ImageURL != nil {
		if err := s.checkImageURL(userID, *req.ImageURL); err != nil {
			return domain.MealResponse{}, err
		}
	}

	if req.FoodID != nil {
		if *req.FoodID == "" {
			updated.FoodID = nil
		} else {
			foodID, err := uuid.Parse(*req.FoodID)
			if err != nil {
				return domain.MealResponse{}, domain.ErrParseUUID
			}
			updated.FoodID = &foodID
		}
	}
	// Picking another food starts from that food's name, 100 grams and
	// picture unless the request says otherwise. Uploaded photos are kept.
	if foodChanged(meal.FoodID, updated.FoodID) && updated.FoodID != nil {
		updated.Name = ""
		updated.Weight = nil
		updated.Unit = nil
		if s.ownedImageKey(userID, updated.ImageURL) == "" {
			updated.ImageURL = ""
		}
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		updated.Name = name
	}
	if req.Weight != nil {
		updated.Weight = req.Weight
	}
	if req.Unit != nil {
		if *req.Unit == "" {
			updated.Unit = nil
		} else {
			unit := *req.Unit
			updated.Unit = &unit
		}
	}
	if req.ImageURL != nil {
		updated.ImageURL = *req.ImageURL
	}

	if updated.FoodID != nil {
		if err := s.applyFoodNutrition(ctx, &updated); err != nil {
			return domain.MealResponse{}, err
		}
	} else {
		if req.Calories != nil {
			updated.Calories = *req.Calories
		}
		if req.Protein != nil {
			updated.Protein = *req.Protein
		}
		if req.Carbs != nil {
			updated.Carbs = *req.Carbs
		}
		if req.Fat != nil {
			updated.Fat = *req.Fat
		}
	}

	if err := s.mealRepository.UpdateMeal(ctx, &updated); err != nil {
		return domain.MealResponse{}, err
	}
	return toMealResponse(&updated), nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID string, mealID string) error {
	meal, err := s.getOwnedMeal(ctx, userID, mealID)
	if err != nil {
		return err
	}

	if err := s.mealRepository.DeleteMeal(ctx, meal.ID.String()); err != nil {
		return err
	}

	if key := s.ownedImageKey(userID, meal.ImageURL); key != "" {
		if err := s.s3.DeleteFile(key); err != nil {
			log.Warnf("failed to delete image %s of meal %s: %v", key, meal.ID, err)
		}
	}

	removed, err := s.mealRepository.DeleteEmptyMealGroups(ctx, userID, meal.MealGroup.Date)
	if err != nil {
		log.Errorf("failed to delete empty meal groups for %s: %v", meal.MealGroup.Date, err)
	} else if removed > 0 {
		log.Debugw("deleted empty meal groups", "user_id", userID, "date", meal.MealGroup.Date, "count", removed)
	}
	return nil
}

func (s *mealService) UpdateMealGroup(ctx context.Context, userID string, groupID string, req domain.UpdateMealGroupRequest) (domain.MealGroupResponse, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return domain.MealGroupResponse{}, domain.ErrParseUUID
	}

	group, err := s.mealRepository.GetMealGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealGroupResponse{}, domain.ErrMealGroupNotFound
		}
		return domain.MealGroupResponse{}, err
	}
	if group.UserID.String() != userID {
		return domain.MealGroupResponse{}, domain.ErrUnauthorizedMealAccess
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.MealGroupResponse{}, domain.ErrEmptyMealGroupName
	}

	group.Name = name
	if err := s.mealRepository.UpdateMealGroup(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.MealGroupResponse{}, domain.ErrMealGroupNameTaken
		}
		return domain.MealGroupResponse{}, err
	}
	return toMealGroupResponse(group), nil
}

func (s *mealService) UploadMealImage(ctx context.Context, userID string, req domain.UploadMealImageRequest) (domain.MealResponse, error) {
	meal, err := s.getOwnedMeal(ctx, userID, req.MealID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	objectKey, err := s.s3.UploadFile(meal.ID.String(), req.Image, mealImageFolder+"/"+userID, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.MealResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.MealResponse{}, err
	}
	// A new file type changes the extension, so the old object may linger.
	if previous := s.ownedImageKey(userID, meal.ImageURL); previous != "" && previous != objectKey {
		if err := s.s3.DeleteFile(previous); err != nil {
			log.Warnf("failed to delete replaced image %s: %v", previous, err)
		}
	}

	meal.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	meal.MealGroup = nil
	if err := s.mealRepository.UpdateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}
	return toMealResponse(meal), nil
}

// ownedImageKey returns the storage key of link when it points into the
// user's own meal image folder, and "" otherwise.
func (s *mealService) ownedImageKey(userID string, link string) string {
	if link == "" {
		return ""
	}
	key := s.s3.GetObjectKeyFromLink(link)
	if !strings.HasPrefix(key, mealImageFolder+"/"+userID+"/") {
		return ""
	}
	return key
}

// checkImageURL rejects client supplied links into our bucket that are not
// the user's own uploads.
func (s *mealService) checkImageURL(userID string, link string) error {
	if link == "" || s.s3.GetObjectKeyFromLink(link) == "" {
		return nil
	}
	if s.ownedImageKey(userID, link) == "" {
		return domain.ErrForeignMealImage
	}
	return nil
}

func foodChanged(before, after *uuid.UUID) bool {
	if before == nil || after == nil {
		return before != after
	}
	return *before != *after
}

func (s *mealService) getOwnedMeal(ctx context.Context, userID string, mealID string) (*entities.Meal, error) {
	if _, err := uuid.Parse(mealID); err != nil {
		return nil, domain.ErrParseUUID
	}

	meal, err := s.mealRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	if meal.MealGroup == nil || meal.MealGroup.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedMealAccess
	}
	return meal, nil
}

// applyFoodNutrition freezes the nutrition of meal.FoodID eaten in the
// meal's weight and unit, 100 grams when they are unset. An empty name or
// image is taken from the food.
func (s *mealService) applyFoodNutrition(ctx context.Context, meal *entities.Meal) error {
	f, err := s.foodRepository.GetFoodByID(ctx, meal.FoodID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	amount := float64(nutrition.DefaultAmount)
	if meal.Weight != nil {
		amount = *meal.Weight
	}
	unit := nutrition.DefaultUnit
	if meal.Unit != nil {
		unit = *meal.Unit
	}

	n, err := nutrition.CalculateNutrition(food.ToNutritionFood(f), amount, unit)
	if err != nil {
		return err
	}

	meal.Weight = &amount
	meal.Unit = &unit
	if meal.Name == "" {
		meal.Name = f.DisplayName()
	}
	if meal.ImageURL == "" && f.ImageURL != nil {
		meal.ImageURL = *f.ImageURL
	}
	meal.Calories = n.Calories
	meal.Protein = n.Protein
	meal.Carbs = n.Carbs
	meal.Fat = n.Fat
	return nil
}

// resolveMealGroup picks the group a new meal goes into: the requested
// group, else the user's group of that name on that date, else a new
// "Meal N" group numbered after the highest existing one.
func resolveMealGroup(ctx context.Context, repo MealRepository, userID uuid.UUID, req domain.AddMealRequest) (*entities.MealGroup, error) {
	if req.MealGroupID != "" {
		if _, err := uuid.Parse(req.MealGroupID); err != nil {
			return nil, domain.ErrParseUUID
		}
		group, err := repo.GetMealGroupByID(ctx, req.MealGroupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMealGroupNotFound
			}
			return nil, err
		}
		if group.UserID != userID {
			return nil, domain.ErrUnauthorizedMealAccess
		}
		if group.Date != req.Date {
			return nil, domain.ErrMealGroupDateMismatch
		}
		return group, nil
	}

	name := strings.TrimSpace(req.MealGroupName)
	if name == "" {
		names, err := repo.GetMealGroupNames(ctx, userID.String(), req.Date)
		if err != nil {
			return nil, err
		}
		name = fmt.Sprintf("%s %d", domain.DefaultMealGroupPrefix, NextMealGroupNumber(names))
	}

	group, err := repo.GetMealGroupByName(ctx, userID.String(), req.Date, name)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group = &entities.MealGroup{
		UserID: userID,
		Date:   req.Date,
		Name:   name,
	}
	if err := repo.CreateMealGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// NextMealGroupNumber returns one more than the highest N among names of
// the form "Meal N", or 1 when there is none.
func NextMealGroupNumber(names []string) int {
	highest := 0
	for _, name := range names {
		m := defaultGroupName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	res := domain.MealResponse{
		ID:          m.ID.String(),
		MealGroupID: m.MealGroupID.String(),
		Name:        m.Name,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fat:         m.Fat,
		Weight:      m.Weight,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
	if m.FoodID != nil {
		res.FoodID = m.FoodID.String()
	}
	if m.Unit != nil {
		res.Unit = *m.Unit
	}
	return res
}

func toMealGroupResponse(g *entities.MealGroup) domain.MealGroupResponse {
	meals := make([]domain.MealResponse, 0, len(g.Meals))
	totals := make([]nutrition.Nutrition, 0, len(g.Meals))
	for i := range g.Meals {
		m := &g.Meals[i]
		meals = append(meals, toMealResponse(m))
		totals = append(totals, nutrition.Nutrition{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat})
	}
	return domain.MealGroupResponse{
		ID:     g.ID.String(),
		Name:   g.Name,
		Date:   g.Date,
		Meals:  meals,
		Totals: nutrition.Sum(totals...),
	}
}
