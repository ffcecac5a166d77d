package handlers

import (
	"errors"
	"fmt"
	"testing"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/gofiber/fiber/v2"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrMealNotFound, fiber.StatusNotFound},
		{domain.ErrUnauthorizedMealAccess, fiber.StatusForbidden},
		{domain.ErrForeignMealImage, fiber.StatusForbidden},
		{domain.ErrProfileAlreadyExists, fiber.StatusConflict},
		{domain.ErrMealGroupNameTaken, fiber.StatusConflict},
		{domain.ErrEmptyMealGroupName, fiber.StatusBadRequest},
		{nutrition.ErrUnitNotFound, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("calculate: %w", nutrition.ErrUnitUnavailable), fiber.StatusUnprocessableEntity},
		{nutrition.ErrInvalidGender, fiber.StatusBadRequest},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := statusFromError(tc.err); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}
