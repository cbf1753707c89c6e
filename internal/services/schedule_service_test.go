package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

type scheduleUserStoreStub struct {
	users       map[uint]models.User
	updatedDays map[uint][]int
}

func (stub *scheduleUserStoreStub) FindByID(userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func (stub *scheduleUserStoreStub) UpdateScheduleDays(userID uint, days []int) error {
	if stub.updatedDays == nil {
		stub.updatedDays = make(map[uint][]int)
	}
	stub.updatedDays[userID] = days
	return nil
}

type scheduleLinkStoreStub struct {
	links         []models.CoachClient
	overrideCalls map[uint][]int
	notesCalls    map[uint]string
}

func (stub *scheduleLinkStoreStub) FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error) {
	for _, link := range stub.links {
		if link.CoachID == coachID && link.ClientID == clientID {
			return link, true, nil
		}
	}
	return models.CoachClient{}, false, nil
}

func (stub *scheduleLinkStoreStub) ListByClient(clientID uint) ([]models.CoachClient, error) {
	matched := make([]models.CoachClient, 0)
	for _, link := range stub.links {
		if link.ClientID == clientID {
			matched = append(matched, link)
		}
	}
	return matched, nil
}

func (stub *scheduleLinkStoreStub) UpdateOverrideDays(linkID uint, days []int) error {
	if stub.overrideCalls == nil {
		stub.overrideCalls = make(map[uint][]int)
	}
	stub.overrideCalls[linkID] = days
	return nil
}

func (stub *scheduleLinkStoreStub) UpdateNotes(linkID uint, notes string) error {
	if stub.notesCalls == nil {
		stub.notesCalls = make(map[uint]string)
	}
	stub.notesCalls[linkID] = notes
	return nil
}

type scheduleCheckInStoreStub struct {
	recent []models.CheckIn
}

func (stub *scheduleCheckInStoreStub) ListRecentActiveByClient(clientID uint, limit int) ([]models.CheckIn, error) {
	entries := stub.recent
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func scheduleFixture(recent []models.CheckIn) (*ScheduleService, *scheduleUserStoreStub, *scheduleLinkStoreStub) {
	users := &scheduleUserStoreStub{users: map[uint]models.User{
		1: {ID: 1, IsCoach: true, ActiveRole: models.RoleCoach, CheckInDaysOfWeek: []int{1}},
		10: {
			ID:         10,
			IsClient:   true,
			ActiveRole: models.RoleClient,
			Timezone:   "UTC",
		},
	}}
	links := &scheduleLinkStoreStub{links: []models.CoachClient{
		{ID: 5, CoachID: 1, ClientID: 10},
	}}
	checkIns := &scheduleCheckInStoreStub{recent: recent}
	clock := fixedClock{now: time.Date(2025, 2, 12, 12, 0, 0, 0, time.UTC)}
	return NewScheduleService(users, links, checkIns, clock), users, links
}

func TestUpdateCoachScheduleValidatesDays(t *testing.T) {
	t.Parallel()

	service, users, _ := scheduleFixture(nil)
	coach := users.users[1]

	err := service.UpdateCoachSchedule(coach, []int{8})
	validationErr := &ValidationError{}
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}

	if err := service.UpdateCoachSchedule(coach, []int{4, 1, 1}); err != nil {
		t.Fatalf("UpdateCoachSchedule: %v", err)
	}
	if got := users.updatedDays[1]; !reflect.DeepEqual(got, []int{1, 4}) {
		t.Fatalf("stored days = %v, want [1 4]", got)
	}
}

func TestUpdateClientOverrideRequiresAssignment(t *testing.T) {
	t.Parallel()

	service, users, links := scheduleFixture(nil)
	coach := users.users[1]

	if err := service.UpdateClientOverride(coach, 99, []int{2}); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("override for stranger: got %v, want ErrNotAssigned", err)
	}

	if err := service.UpdateClientOverride(coach, 10, []int{3}); err != nil {
		t.Fatalf("UpdateClientOverride: %v", err)
	}
	if got := links.overrideCalls[5]; !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("override days = %v, want [3]", got)
	}

	// Clearing the override is just an empty set.
	if err := service.UpdateClientOverride(coach, 10, nil); err != nil {
		t.Fatalf("clear override: %v", err)
	}
	if got := links.overrideCalls[5]; len(got) != 0 {
		t.Fatalf("cleared override = %v, want empty", got)
	}
}

func TestSaveCoachNotesLengthLimit(t *testing.T) {
	t.Parallel()

	service, users, links := scheduleFixture(nil)
	coach := users.users[1]

	long := make([]byte, maxCoachNotesLength+1)
	for index := range long {
		long[index] = 'x'
	}
	err := service.SaveCoachNotes(coach, 10, string(long))
	validationErr := &ValidationError{}
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}

	if err := service.SaveCoachNotes(coach, 10, "cut carbs next block"); err != nil {
		t.Fatalf("SaveCoachNotes: %v", err)
	}
	if got := links.notesCalls[5]; got != "cut carbs next block" {
		t.Fatalf("notes = %q", got)
	}
}

func TestClientPeriodStatusWithoutCheckIn(t *testing.T) {
	t.Parallel()

	service, users, _ := scheduleFixture(nil)
	client := users.users[10]

	status, err := service.ClientPeriodStatus(client)
	if err != nil {
		t.Fatalf("ClientPeriodStatus: %v", err)
	}
	if status.Status != "none" {
		t.Fatalf("status = %s, want none", status.Status)
	}
	if status.Period.StartDate != "2025-02-10" || status.Period.EndDate != "2025-02-17" {
		t.Fatalf("period = %s..%s", status.Period.StartDate, status.Period.EndDate)
	}
}

func TestClientPeriodStatusDetectsSubmission(t *testing.T) {
	t.Parallel()

	service, users, _ := scheduleFixture([]models.CheckIn{
		{
			ID:          31,
			ClientID:    10,
			LocalDate:   "2025-02-12",
			SubmittedAt: time.Date(2025, 2, 12, 9, 0, 0, 0, time.UTC),
			Status:      models.CheckInStatusReviewed,
		},
	})
	client := users.users[10]

	status, err := service.ClientPeriodStatus(client)
	if err != nil {
		t.Fatalf("ClientPeriodStatus: %v", err)
	}
	if status.Status != "reviewed" {
		t.Fatalf("status = %s, want reviewed", status.Status)
	}
	if status.CheckInID == nil || *status.CheckInID != 31 {
		t.Fatalf("check-in id = %v, want 31", status.CheckInID)
	}
}

func TestClientPeriodStatusUnlinkedFallsBackToMonday(t *testing.T) {
	t.Parallel()

	users := &scheduleUserStoreStub{users: map[uint]models.User{
		10: {ID: 10, IsClient: true, ActiveRole: models.RoleClient, Timezone: "UTC"},
	}}
	links := &scheduleLinkStoreStub{}
	checkIns := &scheduleCheckInStoreStub{}
	clock := fixedClock{now: time.Date(2025, 2, 12, 12, 0, 0, 0, time.UTC)}
	service := NewScheduleService(users, links, checkIns, clock)

	status, err := service.ClientPeriodStatus(users.users[10])
	if err != nil {
		t.Fatalf("ClientPeriodStatus: %v", err)
	}
	if status.Period.StartDate != "2025-02-10" {
		t.Fatalf("period start = %s, want monday fallback", status.Period.StartDate)
	}
}
