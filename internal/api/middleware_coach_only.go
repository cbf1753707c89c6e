package api

import "github.com/gofiber/fiber/v2"

// CoachOnly gates coach endpoints on the capability flag, not the active
// role, so a coach browsing in client mode can still reach their roster.
func (handler *Handler) CoachOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !user.IsCoach {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
	return c.Next()
}
