package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

func (handler *Handler) SubmitCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := checkInPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := handler.checkInService.Submit(*user, services.CheckInInput{
		WeekOf:         payload.WeekOf,
		Weight:         payload.Weight,
		DietCompliance: payload.DietCompliance,
		EnergyLevel:    payload.EnergyLevel,
		Notes:          payload.Notes,
		PhotoPaths:     payload.PhotoPaths,
		OverwriteToday: payload.OverwriteToday,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if result.Conflict != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"conflict": fiber.Map{
				"existingId":          result.Conflict.ExistingID,
				"existingSubmittedAt": result.Conflict.ExistingSubmittedAt,
			},
		})
	}

	status := fiber.StatusCreated
	if result.Overwritten {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"id":          result.CheckInID,
		"overwritten": result.Overwritten,
		"revived":     result.Revived,
	})
}

func (handler *Handler) DeleteCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checkInID, err := c.ParamsInt("id")
	if err != nil || checkInID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid check-in id")
	}

	if err := handler.checkInService.Delete(*user, uint(checkInID)); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ReviewCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checkInID, err := c.ParamsInt("id")
	if err != nil || checkInID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid check-in id")
	}

	if err := handler.checkInService.MarkReviewed(*user, uint(checkInID)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
