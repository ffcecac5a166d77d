package handlers

import (
	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/api/presenters"
	"TrackFit-Backend/pkg/summary"

	"github.com/gofiber/fiber/v2"
)

type (
	SummaryHandler interface {
		GetDailySummary(c *fiber.Ctx) error
	}

	summaryHandler struct {
		summaryService summary.SummaryService
	}
)

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandler{
		summaryService: summaryService,
	}
}

func (h *summaryHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.summaryService.GetDailySummary(c.Context(), userID, dateQuery(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}
