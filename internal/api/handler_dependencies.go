package api

import (
	"gorm.io/gorm"

	"github.com/steadfast-app/steadfast/internal/db"
	"github.com/steadfast-app/steadfast/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	repos := handler.repositories

	handler.identityService = services.NewIdentityService(repos.Users)
	handler.checkInService = services.NewCheckInService(repos.CheckIns, repos.Links, handler.clock)
	handler.connectionService = services.NewConnectionService(repos.Users, repos.Links)
	handler.scheduleService = services.NewScheduleService(repos.Users, repos.Links, repos.CheckIns, handler.clock)
	handler.settingsService = services.NewSettingsService(repos.Users)
	handler.inboxService = services.NewInboxService(repos.Users, repos.Links, repos.CheckIns, repos.Messages, handler.clock)
	handler.messageService = services.NewMessageService(repos.Messages, repos.Links, handler.clock)
	handler.reminderService = services.NewReminderService(repos.Users, repos.Links, repos.CheckIns, repos.NotificationLogs, handler.emailSender, handler.clock)
	return handler
}
