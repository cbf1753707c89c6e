package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.scheduleService.ClientPeriodStatus(*user)
	if err != nil {
		return serviceError(c, err)
	}

	response := fiber.Map{
		"periodStart":       status.Period.StartDate,
		"periodEnd":         status.Period.EndDate,
		"label":             status.Period.Label,
		"scheduledWeekdays": status.Period.ScheduledWeekdays,
		"status":            status.Status,
	}
	if status.CheckInID != nil {
		response["checkInId"] = *status.CheckInID
		response["submittedAt"] = status.SubmittedAt
	}
	return c.JSON(response)
}
