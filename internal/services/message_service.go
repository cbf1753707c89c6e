package services

import (
	"strings"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

const maxMessageLength = 5000

type MessageStore interface {
	Create(message *models.Message) error
	ListThread(clientID uint, weekOf time.Time) ([]models.Message, error)
}

type MessageLinkStore interface {
	FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error)
	HasCoach(clientID uint) (bool, error)
}

// MessageService handles the per-check-in message thread between a client and
// their coach. Threads are keyed by (clientID, weekOf).
type MessageService struct {
	messages MessageStore
	links    MessageLinkStore
	clock    Clock
}

func NewMessageService(messages MessageStore, links MessageLinkStore, clock Clock) *MessageService {
	return &MessageService{messages: messages, links: links, clock: clock}
}

func (service *MessageService) SendMessage(sender models.User, clientID uint, rawWeekOf string, body string) (models.Message, error) {
	weekOf, err := ParseWeekStartString(rawWeekOf)
	if err != nil {
		return models.Message{}, NewValidationError("weekOf", "Invalid date")
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return models.Message{}, NewValidationError("body", "Message must not be empty")
	}
	if len(trimmed) > maxMessageLength {
		return models.Message{}, NewValidationError("body", "Message is too long")
	}

	if err := service.authorizeThread(sender, clientID); err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		ClientID: clientID,
		SenderID: sender.ID,
		WeekOf:   weekOf,
		Body:     trimmed,
	}
	if err := service.messages.Create(&message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// ListThread returns the thread for the given week; an empty weekOf means the
// current week.
func (service *MessageService) ListThread(requester models.User, clientID uint, rawWeekOf string) ([]models.Message, error) {
	var weekOf time.Time
	if strings.TrimSpace(rawWeekOf) == "" {
		weekOf = CurrentWeekMonday(service.clock.Now())
	} else {
		parsed, err := ParseWeekStartString(rawWeekOf)
		if err != nil {
			return nil, NewValidationError("weekOf", "Invalid date")
		}
		weekOf = parsed
	}
	if err := service.authorizeThread(requester, clientID); err != nil {
		return nil, err
	}
	return service.messages.ListThread(clientID, weekOf)
}

// authorizeThread lets a client into their own thread when linked to a coach,
// and a coach into threads of their assigned clients.
func (service *MessageService) authorizeThread(user models.User, clientID uint) error {
	if user.ActiveRole == models.RoleCoach {
		if !user.IsCoach {
			return ErrNotCoach
		}
		_, found, err := service.links.FindPair(user.ID, clientID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotAssigned
		}
		return nil
	}

	if user.ID != clientID {
		return ErrNotCheckInOwner
	}
	linked, err := service.links.HasCoach(user.ID)
	if err != nil {
		return err
	}
	if !linked {
		return ErrNotAssigned
	}
	return nil
}
