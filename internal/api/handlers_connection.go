package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ConnectToCoach(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := connectPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	link, err := handler.connectionService.ConnectByCode(*user, payload.CoachCode)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"linkId":  link.ID,
		"coachId": link.CoachID,
	})
}

func (handler *Handler) LeaveCoach(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := leaveCoachPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.connectionService.LeaveCoach(*user, payload.LinkID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) RemoveClient(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID, err := c.ParamsInt("clientId")
	if err != nil || clientID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	if err := handler.connectionService.RemoveClient(*user, uint(clientID)); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
