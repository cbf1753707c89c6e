package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type inboxEntryView struct {
	ClientID         uint       `json:"clientId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `json:"email"`
	Status           string     `json:"status"`
	CheckInID        *uint      `json:"checkInId"`
	Weight           *float64   `json:"weight"`
	WeightChange     *float64   `json:"weightChange"`
	DietCompliance   *int       `json:"dietCompliance"`
	EnergyLevel      *int       `json:"energyLevel"`
	SubmittedAt      *time.Time `json:"submittedAt"`
	PeriodStart      string     `json:"periodStart"`
	PeriodEnd        string     `json:"periodEnd"`
	PeriodLabel      string     `json:"periodLabel"`
	HasClientMessage bool       `json:"hasClientMessage"`
}

func (handler *Handler) GetInbox(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.inboxService.BuildInbox(*user)
	if err != nil {
		return serviceError(c, err)
	}

	views := make([]inboxEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, inboxEntryView{
			ClientID:         entry.ClientID,
			FirstName:        entry.FirstName,
			LastName:         entry.LastName,
			Email:            entry.Email,
			Status:           entry.Status,
			CheckInID:        entry.CheckInID,
			Weight:           entry.Weight,
			WeightChange:     entry.WeightChange,
			DietCompliance:   entry.DietCompliance,
			EnergyLevel:      entry.EnergyLevel,
			SubmittedAt:      entry.SubmittedAt,
			PeriodStart:      entry.PeriodStart,
			PeriodEnd:        entry.PeriodEnd,
			PeriodLabel:      entry.PeriodLabel,
			HasClientMessage: entry.HasClientMessage,
		})
	}
	return c.JSON(views)
}
