package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

func (handler *Handler) ListCheckIns(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID := user.ID
	if raw := c.QueryInt("clientId"); raw > 0 {
		clientID = uint(raw)
	}

	allowed, err := handler.canViewClientCheckIns(user, clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if !allowed {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}

	entries, err := handler.repositories.CheckIns.ListActiveByClient(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-ins")
	}

	views := make([]checkInView, 0, len(entries))
	for _, entry := range entries {
		view, err := handler.buildCheckInView(entry, false)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-ins")
		}
		views = append(views, view)
	}
	return c.JSON(views)
}

func (handler *Handler) GetCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checkInID, err := c.ParamsInt("id")
	if err != nil || checkInID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid check-in id")
	}

	entry, found, err := handler.repositories.CheckIns.FindByID(uint(checkInID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-in")
	}
	if !found || entry.IsDeleted() {
		return apiError(c, fiber.StatusNotFound, "check-in not found")
	}

	allowed, err := handler.canViewClientCheckIns(user, entry.ClientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if !allowed {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}

	view, err := handler.buildCheckInView(entry, true)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-in")
	}
	return c.JSON(view)
}

// TodayLatestCheckIn returns the caller's active check-in for today's local
// date, or null when none exists. The submit form uses it to prefill the
// overwrite prompt.
func (handler *Handler) TodayLatestCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	location := services.LocationFor(user.EffectiveTimezone())
	localDate := services.LocalCalendarDate(handler.clock.Now(), location)

	entry, found, err := handler.repositories.CheckIns.FindActiveByClientAndLocalDate(user.ID, localDate)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-in")
	}
	if !found {
		return c.JSON(nil)
	}

	view, err := handler.buildCheckInView(entry, true)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch check-in")
	}
	return c.JSON(view)
}
