package services

import (
	"github.com/steadfast-app/steadfast/internal/models"
)

const maxCoachNotesLength = 10000

type ScheduleUserStore interface {
	FindByID(userID uint) (models.User, error)
	UpdateScheduleDays(userID uint, days []int) error
}

type ScheduleLinkStore interface {
	FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error)
	ListByClient(clientID uint) ([]models.CoachClient, error)
	UpdateOverrideDays(linkID uint, days []int) error
	UpdateNotes(linkID uint, notes string) error
}

type ScheduleCheckInStore interface {
	ListRecentActiveByClient(clientID uint, limit int) ([]models.CheckIn, error)
}

// PeriodStatus is the client-facing view of the active period.
type PeriodStatus struct {
	Period      Period
	Status      string // "none" | "submitted" | "reviewed"
	CheckInID   *uint
	SubmittedAt string
}

// ScheduleService owns check-in cadences: the coach default, per-client
// overrides, and the resolved period status for a client.
type ScheduleService struct {
	users    ScheduleUserStore
	links    ScheduleLinkStore
	checkIns ScheduleCheckInStore
	clock    Clock
}

func NewScheduleService(users ScheduleUserStore, links ScheduleLinkStore, checkIns ScheduleCheckInStore, clock Clock) *ScheduleService {
	return &ScheduleService{
		users:    users,
		links:    links,
		checkIns: checkIns,
		clock:    clock,
	}
}

func (service *ScheduleService) UpdateCoachSchedule(coach models.User, days []int) error {
	if !coach.IsCoach {
		return ErrNotCoach
	}
	if err := validateScheduleDays(days); err != nil {
		return err
	}
	return service.users.UpdateScheduleDays(coach.ID, normalizeScheduleDays(days))
}

// UpdateClientOverride sets the per-client cadence. An empty set clears the
// override so the coach default applies again.
func (service *ScheduleService) UpdateClientOverride(coach models.User, clientID uint, days []int) error {
	if !coach.IsCoach {
		return ErrNotCoach
	}
	if err := validateScheduleDays(days); err != nil {
		return err
	}

	link, found, err := service.links.FindPair(coach.ID, clientID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotAssigned
	}
	return service.links.UpdateOverrideDays(link.ID, normalizeScheduleDays(days))
}

func (service *ScheduleService) SaveCoachNotes(coach models.User, clientID uint, notes string) error {
	if !coach.IsCoach {
		return ErrNotCoach
	}
	if len(notes) > maxCoachNotesLength {
		return NewValidationError("notes", "Notes are too long")
	}

	link, found, err := service.links.FindPair(coach.ID, clientID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotAssigned
	}
	return service.links.UpdateNotes(link.ID, notes)
}

// ClientPeriodStatus resolves the client's active period and whether a
// check-in exists inside it. Clients without a coach still get a period from
// the Monday fallback so the dashboard always shows a window.
func (service *ScheduleService) ClientPeriodStatus(client models.User) (PeriodStatus, error) {
	var coachDays []int
	var overrideDays []int

	links, err := service.links.ListByClient(client.ID)
	if err != nil {
		return PeriodStatus{}, err
	}
	if len(links) > 0 {
		link := links[0]
		overrideDays = link.CheckInDaysOverride
		coach, err := service.users.FindByID(link.CoachID)
		if err != nil {
			return PeriodStatus{}, err
		}
		coachDays = coach.CheckInDaysOfWeek
	}

	location := LocationFor(client.EffectiveTimezone())
	days := EffectiveScheduleDays(coachDays, overrideDays)
	period := ComputeCurrentPeriod(days, service.clock.Now(), location)

	status := PeriodStatus{Period: period, Status: "none"}

	recent, err := service.checkIns.ListRecentActiveByClient(client.ID, 1)
	if err != nil {
		return PeriodStatus{}, err
	}
	if len(recent) > 0 {
		latest := recent[0]
		if latest.LocalDate >= period.StartDate && latest.LocalDate < period.EndDate {
			status.CheckInID = &latest.ID
			status.SubmittedAt = latest.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
			if latest.Status == models.CheckInStatusReviewed {
				status.Status = "reviewed"
			} else {
				status.Status = "submitted"
			}
		}
	}

	return status, nil
}

func validateScheduleDays(days []int) *ValidationError {
	for _, day := range days {
		if day < 0 || day > 6 {
			return NewValidationError("checkInDaysOfWeek", "Weekday must be between 0 and 6")
		}
	}
	return nil
}
