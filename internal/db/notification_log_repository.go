package db

import (
	"github.com/steadfast-app/steadfast/internal/models"
	"gorm.io/gorm"
)

type NotificationLogRepository struct {
	database *gorm.DB
}

func NewNotificationLogRepository(database *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{database: database}
}

func (repo *NotificationLogRepository) Exists(notificationType string, clientID uint, windowStart string, stage string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.NotificationLog{}).
		Where("type = ? AND client_id = ? AND window_start_date = ? AND stage = ?", notificationType, clientID, windowStart, stage).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *NotificationLogRepository) Create(entry *models.NotificationLog) error {
	return repo.database.Create(entry).Error
}
