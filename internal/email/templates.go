package email

import (
	"fmt"

	"github.com/steadfast-app/steadfast/internal/models"
)

func checkInReminderContent(client models.User, coach models.User, periodLabel string, stage string) (subject string, htmlBody string, textBody string) {
	name := client.FirstName
	if name == "" {
		name = "there"
	}
	coachName := coach.DisplayName()

	if stage == models.ReminderStageOverdue {
		subject = "Your check-in is overdue"
		textBody = fmt.Sprintf(
			"Hi %s,\n\nYour check-in for %s hasn't been submitted yet. %s is waiting to review your progress.\n\nOpen Steadfast to submit it now.\n",
			name, periodLabel, coachName,
		)
		htmlBody = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your check-in for <strong>%s</strong> hasn't been submitted yet. %s is waiting to review your progress.</p><p>Open Steadfast to submit it now.</p>",
			name, periodLabel, coachName,
		)
		return subject, htmlBody, textBody
	}

	subject = "Your check-in is due today"
	textBody = fmt.Sprintf(
		"Hi %s,\n\nToday is your check-in day for %s. Take a minute to log your weight, compliance, and photos so %s can review your week.\n",
		name, periodLabel, coachName,
	)
	htmlBody = fmt.Sprintf(
		"<p>Hi %s,</p><p>Today is your check-in day for <strong>%s</strong>. Take a minute to log your weight, compliance, and photos so %s can review your week.</p>",
		name, periodLabel, coachName,
	)
	return subject, htmlBody, textBody
}
