package handlers

import (
	"strconv"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/api/presenters"
	"TrackFit-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		GetMeasurementUnits(c *fiber.Ctx) error
		CalculateNutrition(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	// Parse pagination parameters
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	foods, count, err := h.foodService.GetFoods(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": foods,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultFoodSearchLimit)))
	if err != nil || limit < 1 || limit > 50 {
		limit = domain.DefaultFoodSearchLimit
	}

	foods, err := h.foodService.SearchFoods(c.Context(), c.Query("q"), limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	res, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) GetMeasurementUnits(c *fiber.Ctx) error {
	res, err := h.foodService.GetMeasurementUnits(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetMeasurementUnits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeasurementUnits)
}

func (h *foodHandler) CalculateNutrition(c *fiber.Ctx) error {
	req := new(domain.CalculateNutritionRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateNutrition, err)
	}

	res, err := h.foodService.CalculateNutrition(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCalculateNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateNutrition)
}
