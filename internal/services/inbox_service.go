package services

import (
	"math"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

const (
	InboxStatusNew      = "new"
	InboxStatusReviewed = "reviewed"
	InboxStatusMissing  = "missing"
)

type InboxUserStore interface {
	FindByID(userID uint) (models.User, error)
}

type InboxLinkStore interface {
	ListByCoach(coachID uint) ([]models.CoachClient, error)
}

type InboxCheckInStore interface {
	ListRecentActiveByClient(clientID uint, limit int) ([]models.CheckIn, error)
}

type InboxMessageStore interface {
	CountFromClientBetween(clientID uint, coachID uint, from time.Time, to time.Time) (int64, error)
}

// InboxEntry is the derived roster row for one client.
type InboxEntry struct {
	ClientID         uint
	FirstName        string
	LastName         string
	Email            string
	Status           string
	CheckInID        *uint
	Weight           *float64
	WeightChange     *float64
	DietCompliance   *int
	EnergyLevel      *int
	SubmittedAt      *time.Time
	PeriodStart      string
	PeriodEnd        string
	PeriodLabel      string
	HasClientMessage bool
}

// InboxService computes per-client statuses for a coach's roster.
type InboxService struct {
	users    InboxUserStore
	links    InboxLinkStore
	checkIns InboxCheckInStore
	messages InboxMessageStore
	clock    Clock
}

func NewInboxService(users InboxUserStore, links InboxLinkStore, checkIns InboxCheckInStore, messages InboxMessageStore, clock Clock) *InboxService {
	return &InboxService{
		users:    users,
		links:    links,
		checkIns: checkIns,
		messages: messages,
		clock:    clock,
	}
}

// BuildInbox classifies each linked client against their own active period:
// no check-in inside the period is missing, an unreviewed one is new. The
// weight delta always comes from the two most recent check-ins regardless of
// period so coaches see the latest trend.
func (service *InboxService) BuildInbox(coach models.User) ([]InboxEntry, error) {
	if !coach.IsCoach {
		return nil, ErrNotCoach
	}

	links, err := service.links.ListByCoach(coach.ID)
	if err != nil {
		return nil, err
	}

	now := service.clock.Now()
	entries := make([]InboxEntry, 0, len(links))
	for _, link := range links {
		client, err := service.users.FindByID(link.ClientID)
		if err != nil {
			return nil, err
		}

		location := LocationFor(client.EffectiveTimezone())
		days := EffectiveScheduleDays(coach.CheckInDaysOfWeek, link.CheckInDaysOverride)
		period := ComputeCurrentPeriod(days, now, location)

		recent, err := service.checkIns.ListRecentActiveByClient(client.ID, 2)
		if err != nil {
			return nil, err
		}

		entry := InboxEntry{
			ClientID:    client.ID,
			FirstName:   client.FirstName,
			LastName:    client.LastName,
			Email:       client.Email,
			Status:      InboxStatusMissing,
			PeriodStart: period.StartDate,
			PeriodEnd:   period.EndDate,
			PeriodLabel: period.Label,
		}

		if len(recent) > 0 {
			latest := recent[0]
			entry.CheckInID = &latest.ID
			entry.Weight = latest.Weight
			entry.DietCompliance = latest.DietCompliance
			entry.EnergyLevel = latest.EnergyLevel
			submittedAt := latest.SubmittedAt
			entry.SubmittedAt = &submittedAt

			entry.Status = classifyCheckIn(latest, period)

			if len(recent) > 1 {
				entry.WeightChange = weightDelta(latest, recent[1])
			}
		}

		unanswered, err := service.messages.CountFromClientBetween(client.ID, coach.ID, period.Start.UTC(), period.End.UTC())
		if err != nil {
			return nil, err
		}
		entry.HasClientMessage = unanswered > 0

		entries = append(entries, entry)
	}

	return entries, nil
}

func classifyCheckIn(latest models.CheckIn, period Period) string {
	// LocalDate is lexicographically ordered, so a string compare against the
	// period bounds is a date compare.
	if latest.LocalDate < period.StartDate || latest.LocalDate >= period.EndDate {
		return InboxStatusMissing
	}
	if latest.Status == models.CheckInStatusReviewed {
		return InboxStatusReviewed
	}
	return InboxStatusNew
}

func weightDelta(latest models.CheckIn, previous models.CheckIn) *float64 {
	if latest.Weight == nil || previous.Weight == nil {
		return nil
	}
	delta := math.Round((*latest.Weight-*previous.Weight)*10) / 10
	return &delta
}
