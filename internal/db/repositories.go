package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	Links            *CoachClientRepository
	CheckIns         *CheckInRepository
	Messages         *MessageRepository
	NotificationLogs *NotificationLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		Links:            NewCoachClientRepository(database),
		CheckIns:         NewCheckInRepository(database),
		Messages:         NewMessageRepository(database),
		NotificationLogs: NewNotificationLogRepository(database),
	}
}
