package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

type messageStoreStub struct {
	messages []models.Message
	nextID   uint
}

func (stub *messageStoreStub) Create(message *models.Message) error {
	stub.nextID++
	message.ID = stub.nextID
	message.CreatedAt = time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC)
	stub.messages = append(stub.messages, *message)
	return nil
}

func (stub *messageStoreStub) ListThread(clientID uint, weekOf time.Time) ([]models.Message, error) {
	thread := make([]models.Message, 0)
	for _, message := range stub.messages {
		if message.ClientID == clientID && message.WeekOf.Equal(weekOf) {
			thread = append(thread, message)
		}
	}
	return thread, nil
}

type messageLinkStoreStub struct {
	pairs map[[2]uint]bool
}

func (stub *messageLinkStoreStub) FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error) {
	if stub.pairs[[2]uint{coachID, clientID}] {
		return models.CoachClient{ID: 1, CoachID: coachID, ClientID: clientID}, true, nil
	}
	return models.CoachClient{}, false, nil
}

func (stub *messageLinkStoreStub) HasCoach(clientID uint) (bool, error) {
	for key := range stub.pairs {
		if key[1] == clientID {
			return true, nil
		}
	}
	return false, nil
}

func messageFixture() (*MessageService, *messageStoreStub) {
	store := &messageStoreStub{}
	links := &messageLinkStoreStub{pairs: map[[2]uint]bool{{1, 10}: true}}
	clock := fixedClock{now: time.Date(2025, 2, 12, 8, 0, 0, 0, time.UTC)}
	return NewMessageService(store, links, clock), store
}

func TestSendMessageClientOwnThread(t *testing.T) {
	t.Parallel()

	service, store := messageFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}

	message, err := service.SendMessage(client, 10, "2025-02-12", "  how did the week go?  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if message.Body != "how did the week go?" {
		t.Fatalf("body = %q, want trimmed", message.Body)
	}
	if got := message.WeekOf.Format("2006-01-02"); got != "2025-02-10" {
		t.Fatalf("weekOf = %s, want monday 2025-02-10", got)
	}
	if len(store.messages) != 1 {
		t.Fatalf("stored %d messages, want 1", len(store.messages))
	}
}

func TestSendMessageAuthorization(t *testing.T) {
	t.Parallel()

	service, _ := messageFixture()

	stranger := models.User{ID: 99, IsClient: true, ActiveRole: models.RoleClient}
	if _, err := service.SendMessage(stranger, 10, "2025-02-10", "hi"); !errors.Is(err, ErrNotCheckInOwner) {
		t.Fatalf("stranger into client thread: got %v, want ErrNotCheckInOwner", err)
	}

	unlinked := models.User{ID: 50, IsClient: true, ActiveRole: models.RoleClient}
	if _, err := service.SendMessage(unlinked, 50, "2025-02-10", "hi"); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("unlinked client: got %v, want ErrNotAssigned", err)
	}

	wrongCoach := models.User{ID: 2, IsCoach: true, ActiveRole: models.RoleCoach}
	if _, err := service.SendMessage(wrongCoach, 10, "2025-02-10", "hi"); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("unassigned coach: got %v, want ErrNotAssigned", err)
	}

	coach := models.User{ID: 1, IsCoach: true, ActiveRole: models.RoleCoach}
	if _, err := service.SendMessage(coach, 10, "2025-02-10", "hi"); err != nil {
		t.Fatalf("assigned coach: %v", err)
	}
}

func TestSendMessageValidation(t *testing.T) {
	t.Parallel()

	service, _ := messageFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}
	validationErr := &ValidationError{}

	if _, err := service.SendMessage(client, 10, "nope", "hi"); !errors.As(err, &validationErr) {
		t.Fatalf("bad weekOf: got %v, want ValidationError", err)
	}
	if _, err := service.SendMessage(client, 10, "2025-02-10", "   "); !errors.As(err, &validationErr) {
		t.Fatalf("blank body: got %v, want ValidationError", err)
	}
	if _, err := service.SendMessage(client, 10, "2025-02-10", strings.Repeat("a", maxMessageLength+1)); !errors.As(err, &validationErr) {
		t.Fatalf("oversized body: got %v, want ValidationError", err)
	}
}

func TestListThreadGroupsByWeek(t *testing.T) {
	t.Parallel()

	service, _ := messageFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}
	coach := models.User{ID: 1, IsCoach: true, ActiveRole: models.RoleCoach}

	if _, err := service.SendMessage(client, 10, "2025-02-10", "week one"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := service.SendMessage(coach, 10, "2025-02-13", "also week one"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := service.SendMessage(client, 10, "2025-02-17", "week two"); err != nil {
		t.Fatalf("send: %v", err)
	}

	thread, err := service.ListThread(coach, 10, "2025-02-10")
	if err != nil {
		t.Fatalf("ListThread: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("thread length = %d, want 2 (same normalized week)", len(thread))
	}

	// An empty weekOf resolves to the clock's current week.
	current, err := service.ListThread(coach, 10, "")
	if err != nil {
		t.Fatalf("ListThread current week: %v", err)
	}
	if len(current) != 2 {
		t.Fatalf("current week thread length = %d, want 2", len(current))
	}
}
