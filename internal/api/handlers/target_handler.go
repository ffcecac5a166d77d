package handlers

import (
	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/api/presenters"
	"TrackFit-Backend/pkg/target"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TargetHandler interface {
		SubmitQuestionnaire(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		GetTargets(c *fiber.Ctx) error
		PreviewTargets(c *fiber.Ctx) error
		RecalculateTargets(c *fiber.Ctx) error
	}

	targetHandler struct {
		targetService target.TargetService
		validator     *validator.Validate
	}
)

func NewTargetHandler(targetService target.TargetService, validator *validator.Validate) TargetHandler {
	return &targetHandler{
		targetService: targetService,
		validator:     validator,
	}
}

func (h *targetHandler) SubmitQuestionnaire(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email, _ := c.Locals("email").(string)
	req := new(domain.QuestionnaireRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitQuestionnaire, err)
	}

	res, err := h.targetService.SubmitQuestionnaire(c.Context(), userID, email, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedSubmitQuestionnaire, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitQuestionnaire)
}

func (h *targetHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.targetService.GetProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *targetHandler) GetTargets(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.targetService.GetTargets(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetTargets, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTargets)
}

func (h *targetHandler) PreviewTargets(c *fiber.Ctx) error {
	req := new(domain.QuestionnaireRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewTargets, err)
	}

	res, err := h.targetService.PreviewTargets(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedPreviewTargets, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPreviewTargets)
}

func (h *targetHandler) RecalculateTargets(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.targetService.RecalculateTargets(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedRecalculateTargets, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecalculateTargets)
}
