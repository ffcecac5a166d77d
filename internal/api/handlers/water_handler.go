package handlers

import (
	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/api/presenters"
	"TrackFit-Backend/pkg/water"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WaterHandler interface {
		GetWaterLog(c *fiber.Ctx) error
		SetWaterLog(c *fiber.Ctx) error
		AddWater(c *fiber.Ctx) error
		ClearWaterLog(c *fiber.Ctx) error
	}

	waterHandler struct {
		waterService water.WaterService
		validator    *validator.Validate
	}
)

func NewWaterHandler(waterService water.WaterService, validator *validator.Validate) WaterHandler {
	return &waterHandler{
		waterService: waterService,
		validator:    validator,
	}
}

func (h *waterHandler) GetWaterLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.waterService.GetWaterLog(c.Context(), userID, dateQuery(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetWaterLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWaterLog)
}

func (h *waterHandler) SetWaterLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetWaterLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetWaterLog, err)
	}

	res, err := h.waterService.SetWaterLog(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedSetWaterLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetWaterLog)
}

func (h *waterHandler) AddWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWaterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWater, err)
	}

	res, err := h.waterService.AddWater(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddWater, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddWater)
}

func (h *waterHandler) ClearWaterLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.waterService.ClearWaterLog(c.Context(), userID, c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedClearWaterLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearWaterLog)
}
