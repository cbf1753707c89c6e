package db

import (
	"github.com/steadfast-app/steadfast/internal/models"
	"gorm.io/gorm"
)

type CoachClientRepository struct {
	database *gorm.DB
}

func NewCoachClientRepository(database *gorm.DB) *CoachClientRepository {
	return &CoachClientRepository{database: database}
}

func (repo *CoachClientRepository) FindByID(linkID uint) (models.CoachClient, bool, error) {
	var link models.CoachClient
	result := repo.database.Limit(1).Find(&link, linkID)
	if result.Error != nil {
		return models.CoachClient{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CoachClient{}, false, nil
	}
	return link, true, nil
}

func (repo *CoachClientRepository) FindPair(coachID uint, clientID uint) (models.CoachClient, bool, error) {
	var link models.CoachClient
	result := repo.database.
		Where("coach_id = ? AND client_id = ?", coachID, clientID).
		Limit(1).
		Find(&link)
	if result.Error != nil {
		return models.CoachClient{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CoachClient{}, false, nil
	}
	return link, true, nil
}

func (repo *CoachClientRepository) HasCoach(clientID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CoachClient{}).
		Where("client_id = ?", clientID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CoachClientRepository) ListByCoach(coachID uint) ([]models.CoachClient, error) {
	links := make([]models.CoachClient, 0)
	if err := repo.database.
		Where("coach_id = ?", coachID).
		Order("created_at ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *CoachClientRepository) ListByClient(clientID uint) ([]models.CoachClient, error) {
	links := make([]models.CoachClient, 0)
	if err := repo.database.
		Where("client_id = ?", clientID).
		Order("created_at ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *CoachClientRepository) ListAll() ([]models.CoachClient, error) {
	links := make([]models.CoachClient, 0)
	if err := repo.database.Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *CoachClientRepository) Create(link *models.CoachClient) error {
	return repo.database.Create(link).Error
}

func (repo *CoachClientRepository) Delete(linkID uint) error {
	return repo.database.Delete(&models.CoachClient{}, linkID).Error
}

func (repo *CoachClientRepository) UpdateOverrideDays(linkID uint, days []int) error {
	link, found, err := repo.FindByID(linkID)
	if err != nil {
		return err
	}
	if !found {
		return gorm.ErrRecordNotFound
	}
	link.CheckInDaysOverride = days
	return repo.database.Save(&link).Error
}

func (repo *CoachClientRepository) UpdateNotes(linkID uint, notes string) error {
	return repo.database.Model(&models.CoachClient{}).Where("id = ?", linkID).Update("coach_notes", notes).Error
}
