package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UpdateClientSchedule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID, err := c.ParamsInt("clientId")
	if err != nil || clientID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := schedulePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.scheduleService.UpdateClientOverride(*user, uint(clientID), payload.CheckInDaysOfWeek); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SaveClientNotes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID, err := c.ParamsInt("clientId")
	if err != nil || clientID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := notesPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.scheduleService.SaveCoachNotes(*user, uint(clientID), payload.Notes); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

type weightHistoryPoint struct {
	Date        string    `json:"date"`
	Weight      float64   `json:"weight"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (handler *Handler) GetWeightHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID, err := c.ParamsInt("clientId")
	if err != nil || clientID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	_, assigned, err := handler.repositories.Links.FindPair(user.ID, uint(clientID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if !assigned {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}

	entries, err := handler.repositories.CheckIns.ListWeightHistory(uint(clientID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch weight history")
	}

	points := make([]weightHistoryPoint, 0, len(entries))
	for _, entry := range entries {
		if entry.Weight == nil {
			continue
		}
		points = append(points, weightHistoryPoint{
			Date:        entry.LocalDate,
			Weight:      *entry.Weight,
			SubmittedAt: entry.SubmittedAt.UTC(),
		})
	}
	return c.JSON(points)
}
