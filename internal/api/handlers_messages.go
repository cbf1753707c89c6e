package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

type messageView struct {
	ID        uint      `json:"id"`
	ClientID  uint      `json:"clientId"`
	SenderID  uint      `json:"senderId"`
	WeekOf    string    `json:"weekOf"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func (handler *Handler) SendMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := messagePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	clientID := payload.ClientID
	if clientID == 0 {
		clientID = user.ID
	}

	message, err := handler.messageService.SendMessage(*user, clientID, payload.WeekOf, payload.Body)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(messageView{
		ID:        message.ID,
		ClientID:  message.ClientID,
		SenderID:  message.SenderID,
		WeekOf:    services.FormatDateUTC(message.WeekOf),
		Body:      message.Body,
		CreatedAt: message.CreatedAt.UTC(),
	})
}

func (handler *Handler) ListMessages(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	clientID := user.ID
	if raw := c.QueryInt("clientId"); raw > 0 {
		clientID = uint(raw)
	}
	weekOf := c.Query("weekOf")

	messages, err := handler.messageService.ListThread(*user, clientID, weekOf)
	if err != nil {
		return serviceError(c, err)
	}

	views := make([]messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, messageView{
			ID:        message.ID,
			ClientID:  message.ClientID,
			SenderID:  message.SenderID,
			WeekOf:    services.FormatDateUTC(message.WeekOf),
			Body:      message.Body,
			CreatedAt: message.CreatedAt.UTC(),
		})
	}
	return c.JSON(views)
}
