package handlers

import (
	"errors"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/utils/storage"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrProfileNotFound, fiber.StatusNotFound},
	{domain.ErrTargetsNotFound, fiber.StatusNotFound},
	{domain.ErrFoodNotFound, fiber.StatusNotFound},
	{domain.ErrMealNotFound, fiber.StatusNotFound},
	{domain.ErrMealGroupNotFound, fiber.StatusNotFound},

	{domain.ErrUnauthorizedMealAccess, fiber.StatusForbidden},
	{domain.ErrForeignMealImage, fiber.StatusForbidden},

	{domain.ErrProfileAlreadyExists, fiber.StatusConflict},
	{domain.ErrMealGroupNameTaken, fiber.StatusConflict},

	{nutrition.ErrUnitUnavailable, fiber.StatusUnprocessableEntity},
	{nutrition.ErrUnitNotFound, fiber.StatusUnprocessableEntity},
	{nutrition.ErrInvalidAmount, fiber.StatusUnprocessableEntity},

	{storage.ErrStorageDisabled, fiber.StatusServiceUnavailable},

	{domain.ErrParseUUID, fiber.StatusBadRequest},
	{domain.ErrInvalidDate, fiber.StatusBadRequest},
	{domain.ErrEmptySearchQuery, fiber.StatusBadRequest},
	{domain.ErrMissingNutrition, fiber.StatusBadRequest},
	{domain.ErrMealGroupDateMismatch, fiber.StatusBadRequest},
	{domain.ErrEmptyMealGroupName, fiber.StatusBadRequest},
	{domain.ErrInvalidImageFormat, fiber.StatusBadRequest},
	{domain.ErrInvalidWaterAmount, fiber.StatusBadRequest},
	{nutrition.ErrInvalidGender, fiber.StatusBadRequest},
	{nutrition.ErrInvalidActivityLevel, fiber.StatusBadRequest},
	{nutrition.ErrInvalidWeightGoal, fiber.StatusBadRequest},
	{nutrition.ErrInvalidWeightRate, fiber.StatusBadRequest},
}

// statusFromError maps service errors to HTTP status codes. Unknown errors
// are logged and reported as 500.
func statusFromError(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	log.Errorf("unexpected error: %v", err)
	return fiber.StatusInternalServerError
}

// dateQuery reads the "date" query parameter, today (UTC) when absent.
func dateQuery(c *fiber.Ctx) string {
	return c.Query("date", time.Now().UTC().Format(domain.DateLayout))
}
