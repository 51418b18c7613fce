package handlers

import (
	"errors"

	"nutrition-tracker/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound), errors.Is(err, domain.ErrMealPlanNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidServingSize),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrEmptyMealPlan),
		errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}
