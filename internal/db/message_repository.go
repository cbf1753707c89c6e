package db

import (
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	database *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{database: database}
}

func (repo *MessageRepository) Create(message *models.Message) error {
	return repo.database.Create(message).Error
}

func (repo *MessageRepository) ListThread(clientID uint, weekOf time.Time) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	if err := repo.database.
		Where("client_id = ? AND week_of = ?", clientID, weekOf).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// CountFromClientBetween counts messages on the client's thread sent by anyone
// other than the coach within [from, to).
func (repo *MessageRepository) CountFromClientBetween(clientID uint, coachID uint, from time.Time, to time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Message{}).
		Where("client_id = ? AND sender_id <> ? AND created_at >= ? AND created_at < ?", clientID, coachID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
