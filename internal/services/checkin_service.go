package services

import (
	"errors"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

var (
	ErrNotClient       = errors.New("only clients can submit check-ins")
	ErrNotCoach        = errors.New("only coaches can perform this action")
	ErrNotAssigned     = errors.New("not assigned to this client")
	ErrCheckInNotFound = errors.New("check-in not found")
	ErrCheckInDeleted  = errors.New("check-in already deleted")
	ErrNotCheckInOwner = errors.New("not your check-in")
)

const noCoachMessage = "You need to connect to a coach before submitting check-ins. Go to your dashboard to enter a coach code."

type CheckInStore interface {
	FindByID(checkInID uint) (models.CheckIn, bool, error)
	FindActiveByClientAndLocalDate(clientID uint, localDate string) (models.CheckIn, bool, error)
	FindDeletedByClientAndLocalDate(clientID uint, localDate string) (models.CheckIn, bool, error)
	CreateWithPhotos(entry *models.CheckIn, photoPaths []string) error
	ReplaceWithPhotos(entry *models.CheckIn, photoPaths []string) error
	SoftDelete(checkInID uint, deletedAt time.Time) error
	UpdateStatus(checkInID uint, status string) error
}

type CheckInLinkStore interface {
	HasCoach(clientID uint) (bool, error)
	FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error)
}

// CheckInInput is one submission attempt. OverwriteToday is the conflict
// resolution: nil means "detect and report", true replaces today's existing
// check-in in place, false adds a second entry for the same local day.
type CheckInInput struct {
	WeekOf         string
	Weight         float64
	DietCompliance *int
	EnergyLevel    *int
	Notes          string
	PhotoPaths     []string
	OverwriteToday *bool
}

type SubmitConflict struct {
	ExistingID          uint
	ExistingSubmittedAt time.Time
}

type SubmitResult struct {
	CheckInID   uint
	Overwritten bool
	Revived     bool
	Conflict    *SubmitConflict
}

// CheckInService coordinates submissions per (client, local date) slot.
type CheckInService struct {
	checkIns CheckInStore
	links    CheckInLinkStore
	clock    Clock
}

func NewCheckInService(checkIns CheckInStore, links CheckInLinkStore, clock Clock) *CheckInService {
	return &CheckInService{
		checkIns: checkIns,
		links:    links,
		clock:    clock,
	}
}

// Submit runs the per-day submission state machine. A same-day duplicate
// without a resolution choice returns a Conflict result with nothing mutated;
// it is a decision point, not an error.
func (service *CheckInService) Submit(client models.User, input CheckInInput) (SubmitResult, error) {
	if client.ActiveRole != models.RoleClient {
		return SubmitResult{}, ErrNotClient
	}

	hasCoach, err := service.links.HasCoach(client.ID)
	if err != nil {
		return SubmitResult{}, err
	}
	if !hasCoach {
		// Surfaced on the weekOf field so the form can render it inline
		// instead of failing the whole page.
		return SubmitResult{}, NewValidationError("weekOf", noCoachMessage)
	}

	weekOf, validationErr := validateCheckInInput(input)
	if validationErr != nil {
		return SubmitResult{}, validationErr
	}

	now := service.clock.Now()
	location := LocationFor(client.EffectiveTimezone())
	localDate := LocalCalendarDate(now, location)

	existing, found, err := service.checkIns.FindActiveByClientAndLocalDate(client.ID, localDate)
	if err != nil {
		return SubmitResult{}, err
	}

	if found {
		if input.OverwriteToday == nil {
			return SubmitResult{
				Conflict: &SubmitConflict{
					ExistingID:          existing.ID,
					ExistingSubmittedAt: existing.SubmittedAt,
				},
			}, nil
		}

		if *input.OverwriteToday {
			applyCheckInFields(&existing, input, weekOf, now, location)
			if err := service.checkIns.ReplaceWithPhotos(&existing, input.PhotoPaths); err != nil {
				return SubmitResult{}, err
			}
			return SubmitResult{CheckInID: existing.ID, Overwritten: true}, nil
		}

		// Caller explicitly asked for a second entry on the same local day.
		return service.createCheckIn(client.ID, input, weekOf, now, location)
	}

	// No active row. A soft-deleted row for the same slot is revived instead
	// of growing a new one, keeping its identity.
	deleted, foundDeleted, err := service.checkIns.FindDeletedByClientAndLocalDate(client.ID, localDate)
	if err != nil {
		return SubmitResult{}, err
	}
	if foundDeleted {
		applyCheckInFields(&deleted, input, weekOf, now, location)
		deleted.DeletedAt = nil
		if err := service.checkIns.ReplaceWithPhotos(&deleted, input.PhotoPaths); err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{CheckInID: deleted.ID, Revived: true}, nil
	}

	return service.createCheckIn(client.ID, input, weekOf, now, location)
}

func (service *CheckInService) createCheckIn(clientID uint, input CheckInInput, weekOf time.Time, now time.Time, location *time.Location) (SubmitResult, error) {
	entry := models.CheckIn{
		ClientID: clientID,
		Status:   models.CheckInStatusSubmitted,
	}
	applyCheckInFields(&entry, input, weekOf, now, location)
	if err := service.checkIns.CreateWithPhotos(&entry, input.PhotoPaths); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{CheckInID: entry.ID}, nil
}

func applyCheckInFields(entry *models.CheckIn, input CheckInInput, weekOf time.Time, now time.Time, location *time.Location) {
	weight := input.Weight
	entry.WeekOf = weekOf
	entry.SubmittedAt = now
	entry.LocalDate = LocalCalendarDate(now, location)
	entry.Timezone = location.String()
	entry.Weight = &weight
	entry.DietCompliance = input.DietCompliance
	entry.EnergyLevel = input.EnergyLevel
	entry.Notes = input.Notes
	entry.Status = models.CheckInStatusSubmitted
}

// Delete soft-deletes a check-in owned by the caller. Operating on a missing
// or already-deleted row is a hard failure.
func (service *CheckInService) Delete(client models.User, checkInID uint) error {
	if client.ActiveRole != models.RoleClient {
		return ErrNotClient
	}

	entry, found, err := service.checkIns.FindByID(checkInID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCheckInNotFound
	}
	if entry.ClientID != client.ID {
		return ErrNotCheckInOwner
	}
	if entry.IsDeleted() {
		return ErrCheckInDeleted
	}

	return service.checkIns.SoftDelete(entry.ID, service.clock.Now())
}

// MarkReviewed advances SUBMITTED to REVIEWED. Only a coach with an active
// link to the owning client may review, and the transition is one-way.
func (service *CheckInService) MarkReviewed(coach models.User, checkInID uint) error {
	if !coach.IsCoach {
		return ErrNotCoach
	}

	entry, found, err := service.checkIns.FindByID(checkInID)
	if err != nil {
		return err
	}
	if !found || entry.IsDeleted() {
		return ErrCheckInNotFound
	}

	_, assigned, err := service.links.FindPair(coach.ID, entry.ClientID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrNotAssigned
	}

	if entry.Status == models.CheckInStatusReviewed {
		return nil
	}
	return service.checkIns.UpdateStatus(entry.ID, models.CheckInStatusReviewed)
}
