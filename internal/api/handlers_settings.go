package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

func (handler *Handler) UpdateCoachSchedule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := schedulePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.scheduleService.UpdateCoachSchedule(*user, payload.CheckInDaysOfWeek); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UpdateTimezone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := timezonePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.settingsService.UpdateTimezone(*user, payload.Timezone); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UpdateNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := notificationsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.settingsService.UpdateNotificationPreferences(*user, services.NotificationPreferences{
		EmailCheckInReminders: payload.EmailCheckInReminders,
		EmailMealPlanUpdates:  payload.EmailMealPlanUpdates,
	}); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SwitchRole(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := switchRolePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.settingsService.SwitchRole(*user, payload.Role); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"role": payload.Role})
}
