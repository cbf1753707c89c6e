package services

import (
	"errors"
	"testing"

	"github.com/steadfast-app/steadfast/internal/models"
)

type connectionUserStoreStub struct {
	byCode map[string]models.User
}

func (stub *connectionUserStoreStub) FindByCoachCode(code string) (models.User, bool, error) {
	user, ok := stub.byCode[code]
	return user, ok, nil
}

type connectionLinkStoreStub struct {
	links  map[uint]models.CoachClient
	nextID uint
}

func newConnectionLinkStoreStub() *connectionLinkStoreStub {
	return &connectionLinkStoreStub{links: make(map[uint]models.CoachClient), nextID: 1}
}

func (stub *connectionLinkStoreStub) FindByID(linkID uint) (models.CoachClient, bool, error) {
	link, ok := stub.links[linkID]
	return link, ok, nil
}

func (stub *connectionLinkStoreStub) FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error) {
	for _, link := range stub.links {
		if link.CoachID == coachID && link.ClientID == clientID {
			return link, true, nil
		}
	}
	return models.CoachClient{}, false, nil
}

func (stub *connectionLinkStoreStub) Create(link *models.CoachClient) error {
	link.ID = stub.nextID
	stub.nextID++
	stub.links[link.ID] = *link
	return nil
}

func (stub *connectionLinkStoreStub) Delete(linkID uint) error {
	delete(stub.links, linkID)
	return nil
}

func connectionFixture() (*ConnectionService, *connectionLinkStoreStub) {
	code := "ABC234"
	users := &connectionUserStoreStub{byCode: map[string]models.User{
		"ABC234": {ID: 1, IsCoach: true, ActiveRole: models.RoleCoach, CoachCode: &code},
	}}
	links := newConnectionLinkStoreStub()
	return NewConnectionService(users, links), links
}

func TestConnectByCodeNormalizesInput(t *testing.T) {
	t.Parallel()

	service, links := connectionFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}

	link, err := service.ConnectByCode(client, "  abc234 ")
	if err != nil {
		t.Fatalf("ConnectByCode: %v", err)
	}
	if link.CoachID != 1 || link.ClientID != 10 {
		t.Fatalf("link = %+v", link)
	}
	if len(links.links) != 1 {
		t.Fatalf("stored %d links, want 1", len(links.links))
	}
}

func TestConnectByCodeFailures(t *testing.T) {
	t.Parallel()

	service, _ := connectionFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}

	if _, err := service.ConnectByCode(client, "ZZZZZZ"); !errors.Is(err, ErrCoachCodeNotFound) {
		t.Fatalf("unknown code: got %v, want ErrCoachCodeNotFound", err)
	}

	validationErr := &ValidationError{}
	if _, err := service.ConnectByCode(client, "   "); !errors.As(err, &validationErr) {
		t.Fatalf("blank code: got %v, want ValidationError", err)
	}

	coach := models.User{ID: 2, IsCoach: true, ActiveRole: models.RoleCoach}
	if _, err := service.ConnectByCode(coach, "ABC234"); !errors.Is(err, ErrNotClient) {
		t.Fatalf("coach connecting: got %v, want ErrNotClient", err)
	}

	if _, err := service.ConnectByCode(client, "ABC234"); err != nil {
		t.Fatalf("first connect: %v", err)
	}
	if _, err := service.ConnectByCode(client, "ABC234"); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("duplicate connect: got %v, want ErrAlreadyConnected", err)
	}
}

func TestLeaveCoachChecksOwnership(t *testing.T) {
	t.Parallel()

	service, links := connectionFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}

	link, err := service.ConnectByCode(client, "ABC234")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	other := models.User{ID: 11, IsClient: true, ActiveRole: models.RoleClient}
	if err := service.LeaveCoach(other, link.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("leave foreign link: got %v, want ErrLinkNotFound", err)
	}

	if err := service.LeaveCoach(client, link.ID); err != nil {
		t.Fatalf("LeaveCoach: %v", err)
	}
	if len(links.links) != 0 {
		t.Fatalf("link not removed: %v", links.links)
	}
}

func TestRemoveClientRequiresExistingLink(t *testing.T) {
	t.Parallel()

	service, links := connectionFixture()
	client := models.User{ID: 10, IsClient: true, ActiveRole: models.RoleClient}
	coach := models.User{ID: 1, IsCoach: true, ActiveRole: models.RoleCoach}

	if err := service.RemoveClient(coach, 10); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("remove unlinked client: got %v, want ErrLinkNotFound", err)
	}

	if _, err := service.ConnectByCode(client, "ABC234"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := service.RemoveClient(coach, 10); err != nil {
		t.Fatalf("RemoveClient: %v", err)
	}
	if len(links.links) != 0 {
		t.Fatalf("link not removed: %v", links.links)
	}
}
