package services

import (
	"errors"
	"strings"

	"github.com/steadfast-app/steadfast/internal/models"
)

var (
	ErrCoachCodeNotFound = errors.New("coach code not found")
	ErrAlreadyConnected  = errors.New("already connected to this coach")
	ErrLinkNotFound      = errors.New("coach relationship not found")
)

type ConnectionUserStore interface {
	FindByCoachCode(code string) (models.User, bool, error)
}

type ConnectionLinkStore interface {
	FindByID(linkID uint) (models.CoachClient, bool, error)
	FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error)
	Create(link *models.CoachClient) error
	Delete(linkID uint) error
}

// ConnectionService manages the coach-client links. Destroying a link never
// touches historical check-ins or messages.
type ConnectionService struct {
	users ConnectionUserStore
	links ConnectionLinkStore
}

func NewConnectionService(users ConnectionUserStore, links ConnectionLinkStore) *ConnectionService {
	return &ConnectionService{users: users, links: links}
}

func (service *ConnectionService) ConnectByCode(client models.User, rawCode string) (models.CoachClient, error) {
	if client.ActiveRole != models.RoleClient {
		return models.CoachClient{}, ErrNotClient
	}

	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return models.CoachClient{}, NewValidationError("coachCode", "Please enter a valid coach code.")
	}

	coach, found, err := service.users.FindByCoachCode(code)
	if err != nil {
		return models.CoachClient{}, err
	}
	if !found || !coach.IsCoach {
		return models.CoachClient{}, ErrCoachCodeNotFound
	}

	_, exists, err := service.links.FindPair(coach.ID, client.ID)
	if err != nil {
		return models.CoachClient{}, err
	}
	if exists {
		return models.CoachClient{}, ErrAlreadyConnected
	}

	link := models.CoachClient{
		CoachID:  coach.ID,
		ClientID: client.ID,
	}
	if err := service.links.Create(&link); err != nil {
		return models.CoachClient{}, err
	}
	return link, nil
}

func (service *ConnectionService) RemoveClient(coach models.User, clientID uint) error {
	if !coach.IsCoach {
		return ErrNotCoach
	}

	link, found, err := service.links.FindPair(coach.ID, clientID)
	if err != nil {
		return err
	}
	if !found {
		return ErrLinkNotFound
	}
	return service.links.Delete(link.ID)
}

func (service *ConnectionService) LeaveCoach(client models.User, linkID uint) error {
	if client.ActiveRole != models.RoleClient {
		return ErrNotClient
	}

	link, found, err := service.links.FindByID(linkID)
	if err != nil {
		return err
	}
	if !found || link.ClientID != client.ID {
		return ErrLinkNotFound
	}
	return service.links.Delete(link.ID)
}
