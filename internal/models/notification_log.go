package models

import "time"

const (
	NotificationTypeCheckInReminder = "CHECKIN_REMINDER"
	NotificationTypeMealPlanUpdate  = "MEAL_PLAN_UPDATE"
)

const (
	ReminderStageDueSoon = "DUE_SOON"
	ReminderStageOverdue = "OVERDUE"
)

// NotificationLog records one outbound email. The unique index is the
// dedup guard: one reminder per client per window per stage.
// WindowStartDate holds the period's local calendar date as "YYYY-MM-DD".
type NotificationLog struct {
	ID              uint   `gorm:"primaryKey"`
	Type            string `gorm:"not null;uniqueIndex:uidx_notification_logs_window"`
	ClientID        uint   `gorm:"not null;uniqueIndex:uidx_notification_logs_window"`
	WindowStartDate string `gorm:"not null;uniqueIndex:uidx_notification_logs_window"`
	Stage           string `gorm:"uniqueIndex:uidx_notification_logs_window"`
	CreatedAt       time.Time
}
