package services

import (
	"context"
	"log"

	"github.com/steadfast-app/steadfast/internal/models"
)

type ReminderUserStore interface {
	FindByID(userID uint) (models.User, error)
}

type ReminderLinkStore interface {
	ListAll() ([]models.CoachClient, error)
}

type ReminderCheckInStore interface {
	HasActiveInLocalDateRange(clientID uint, fromDate string, toDate string) (bool, error)
}

type ReminderLogStore interface {
	Exists(notificationType string, clientID uint, windowStartDate string, stage string) (bool, error)
	Create(entry *models.NotificationLog) error
}

// ReminderNotifier delivers a check-in reminder to one client.
type ReminderNotifier interface {
	SendCheckInReminder(ctx context.Context, client models.User, coach models.User, periodLabel string, stage string) error
}

// ReminderRunReport summarizes one batch run.
type ReminderRunReport struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
}

// ReminderService sends check-in reminder emails: DUE_SOON on the scheduled
// day itself, OVERDUE on later days of a period with no submission. Each
// (client, window, stage) fires at most once, enforced by the notification
// log's unique index so concurrent batch runs stay idempotent.
type ReminderService struct {
	users    ReminderUserStore
	links    ReminderLinkStore
	checkIns ReminderCheckInStore
	logs     ReminderLogStore
	notifier ReminderNotifier
	clock    Clock
}

func NewReminderService(users ReminderUserStore, links ReminderLinkStore, checkIns ReminderCheckInStore, logs ReminderLogStore, notifier ReminderNotifier, clock Clock) *ReminderService {
	return &ReminderService{
		users:    users,
		links:    links,
		checkIns: checkIns,
		logs:     logs,
		notifier: notifier,
		clock:    clock,
	}
}

func (service *ReminderService) SendDueReminders(ctx context.Context) (ReminderRunReport, error) {
	links, err := service.links.ListAll()
	if err != nil {
		return ReminderRunReport{}, err
	}

	report := ReminderRunReport{}
	now := service.clock.Now()

	for _, link := range links {
		client, err := service.users.FindByID(link.ClientID)
		if err != nil {
			log.Printf("reminders: fetch client %d failed: %v", link.ClientID, err)
			report.Skipped++
			continue
		}
		if !client.EmailCheckInReminders {
			report.Skipped++
			continue
		}

		coach, err := service.users.FindByID(link.CoachID)
		if err != nil {
			log.Printf("reminders: fetch coach %d failed: %v", link.CoachID, err)
			report.Skipped++
			continue
		}

		location := LocationFor(client.EffectiveTimezone())
		days := EffectiveScheduleDays(coach.CheckInDaysOfWeek, link.CheckInDaysOverride)
		period := ComputeCurrentPeriod(days, now, location)

		submitted, err := service.checkIns.HasActiveInLocalDateRange(client.ID, period.StartDate, period.EndDate)
		if err != nil {
			log.Printf("reminders: check submissions for client %d failed: %v", client.ID, err)
			report.Skipped++
			continue
		}
		if submitted {
			report.Skipped++
			continue
		}

		stage := models.ReminderStageOverdue
		if LocalCalendarDate(now, location) == period.StartDate {
			stage = models.ReminderStageDueSoon
		}

		sent, err := service.sendOnce(ctx, client, coach, period, stage)
		if err != nil {
			log.Printf("reminders: send to client %d failed: %v", client.ID, err)
			report.Skipped++
			continue
		}
		if sent {
			report.Sent++
		} else {
			report.Skipped++
		}
	}

	return report, nil
}

func (service *ReminderService) sendOnce(ctx context.Context, client models.User, coach models.User, period Period, stage string) (bool, error) {
	already, err := service.logs.Exists(models.NotificationTypeCheckInReminder, client.ID, period.StartDate, stage)
	if err != nil {
		return false, err
	}
	if already {
		return false, nil
	}

	// Record before sending: a duplicate email is worse than a lost one, and
	// the unique index turns a concurrent double-insert into a no-op for the
	// loser.
	entry := models.NotificationLog{
		Type:            models.NotificationTypeCheckInReminder,
		ClientID:        client.ID,
		WindowStartDate: period.StartDate,
		Stage:           stage,
	}
	if err := service.logs.Create(&entry); err != nil {
		return false, nil
	}

	if err := service.notifier.SendCheckInReminder(ctx, client, coach, period.Label, stage); err != nil {
		return false, err
	}
	return true, nil
}
