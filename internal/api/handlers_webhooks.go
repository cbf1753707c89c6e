package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/services"
)

// IdentityWebhook receives user lifecycle events from the identity provider.
// The payload is authenticated by an HMAC signature over the raw body.
func (handler *Handler) IdentityWebhook(c *fiber.Ctx) error {
	if !handler.verifyWebhookSignature(c) {
		return apiError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	payload := identityWebhookPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.identityService.SyncIdentity(services.IdentityClaims{
		ExternalID: payload.ExternalID,
		Email:      payload.Email,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		IsCoach:    payload.IsCoach,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"userId": user.ID})
}

func (handler *Handler) verifyWebhookSignature(c *fiber.Ctx) bool {
	if handler.webhookSecret == "" {
		return false
	}

	signature := strings.TrimSpace(c.Get("X-Webhook-Signature"))
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(handler.webhookSecret))
	mac.Write(c.Body())
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
