package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationErrorResponse(c *fiber.Ctx, validationErr *services.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Fields})
}

// serviceError maps service failures onto HTTP statuses. Field-keyed
// validation errors keep their structure so forms can render them inline.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return validationErrorResponse(c, validationErr)
	}

	switch {
	case errors.Is(err, services.ErrNotClient),
		errors.Is(err, services.ErrNotCoach),
		errors.Is(err, services.ErrNotAssigned),
		errors.Is(err, services.ErrNotCheckInOwner),
		errors.Is(err, services.ErrRoleNotAvailable):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrCheckInNotFound),
		errors.Is(err, services.ErrCoachCodeNotFound),
		errors.Is(err, services.ErrLinkNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCheckInDeleted),
		errors.Is(err, services.ErrAlreadyConnected):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
