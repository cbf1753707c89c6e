package api

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// RunCheckInReminders is invoked by the scheduler. It authenticates with a
// static bearer secret instead of a user token.
func (handler *Handler) RunCheckInReminders(c *fiber.Ctx) error {
	token := bearerToken(c)
	if handler.cronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(handler.cronSecret)) != 1 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, err := handler.reminderService.SendDueReminders(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "reminder run failed")
	}
	return c.JSON(report)
}
