package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/steadfast-app/steadfast/internal/models"
	"github.com/steadfast-app/steadfast/internal/storage"
)

func (handler *Handler) CreateUploadURLs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := uploadURLsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(payload.FileNames) == 0 {
		return apiError(c, fiber.StatusBadRequest, "file names are required")
	}
	if len(payload.FileNames) > models.MaxCheckInPhotos {
		return apiError(c, fiber.StatusBadRequest, "too many files")
	}

	uploads, err := handler.photoStore.CreateSignedUploads(user.ID, payload.FileNames)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFileName) {
			return apiError(c, fiber.StatusBadRequest, "file name must not be empty")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create upload urls")
	}
	return c.JSON(fiber.Map{"uploads": uploads})
}
