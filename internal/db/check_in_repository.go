package db

import (
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	database *gorm.DB
}

func NewCheckInRepository(database *gorm.DB) *CheckInRepository {
	return &CheckInRepository{database: database}
}

func (repo *CheckInRepository) FindByID(checkInID uint) (models.CheckIn, bool, error) {
	var entry models.CheckIn
	result := repo.database.Limit(1).Find(&entry, checkInID)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return entry, true, nil
}

// FindActiveByClientAndLocalDate returns the most recent non-deleted check-in
// for the (client, local date) slot.
func (repo *CheckInRepository) FindActiveByClientAndLocalDate(clientID uint, localDate string) (models.CheckIn, bool, error) {
	var entry models.CheckIn
	result := repo.database.
		Where("client_id = ? AND local_date = ? AND deleted_at IS NULL", clientID, localDate).
		Order("submitted_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return entry, true, nil
}

// FindDeletedByClientAndLocalDate returns the most recent soft-deleted row for
// the slot, the revive candidate.
func (repo *CheckInRepository) FindDeletedByClientAndLocalDate(clientID uint, localDate string) (models.CheckIn, bool, error) {
	var entry models.CheckIn
	result := repo.database.
		Where("client_id = ? AND local_date = ? AND deleted_at IS NOT NULL", clientID, localDate).
		Order("submitted_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return entry, true, nil
}

func (repo *CheckInRepository) ListActiveByClient(clientID uint) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	if err := repo.database.
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		Order("submitted_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CheckInRepository) ListRecentActiveByClient(clientID uint, limit int) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0, limit)
	if err := repo.database.
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		Order("submitted_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListWeightHistory returns non-deleted check-ins carrying a weight, oldest first.
func (repo *CheckInRepository) ListWeightHistory(clientID uint) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	if err := repo.database.
		Select("id", "client_id", "week_of", "submitted_at", "local_date", "weight").
		Where("client_id = ? AND deleted_at IS NULL AND weight IS NOT NULL", clientID).
		Order("submitted_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// HasActiveInLocalDateRange reports whether any non-deleted check-in exists
// with local_date in [fromDate, toDate).
func (repo *CheckInRepository) HasActiveInLocalDateRange(clientID uint, fromDate string, toDate string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CheckIn{}).
		Where("client_id = ? AND deleted_at IS NULL AND local_date >= ? AND local_date < ?", clientID, fromDate, toDate).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// CreateWithPhotos inserts a check-in and its photo rows atomically.
func (repo *CheckInRepository) CreateWithPhotos(entry *models.CheckIn, photoPaths []string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return createPhotoRows(tx, entry.ID, photoPaths)
	})
}

// ReplaceWithPhotos saves the given entry in place and swaps its photo set.
// Old photo rows are deleted and the new ones created in the same transaction,
// so a partially applied overwrite or revive is never observable.
func (repo *CheckInRepository) ReplaceWithPhotos(entry *models.CheckIn, photoPaths []string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("check_in_id = ?", entry.ID).Delete(&models.CheckInPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Save(entry).Error; err != nil {
			return err
		}
		return createPhotoRows(tx, entry.ID, photoPaths)
	})
}

func createPhotoRows(tx *gorm.DB, checkInID uint, photoPaths []string) error {
	for index, path := range photoPaths {
		photo := models.CheckInPhoto{
			CheckInID:   checkInID,
			StoragePath: path,
			SortOrder:   index,
		}
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}
	}
	return nil
}

func (repo *CheckInRepository) SoftDelete(checkInID uint, deletedAt time.Time) error {
	return repo.database.Model(&models.CheckIn{}).
		Where("id = ?", checkInID).
		Update("deleted_at", deletedAt).Error
}

func (repo *CheckInRepository) UpdateStatus(checkInID uint, status string) error {
	return repo.database.Model(&models.CheckIn{}).
		Where("id = ?", checkInID).
		Update("status", status).Error
}

func (repo *CheckInRepository) ListPhotos(checkInID uint) ([]models.CheckInPhoto, error) {
	photos := make([]models.CheckInPhoto, 0)
	if err := repo.database.
		Where("check_in_id = ?", checkInID).
		Order("sort_order ASC, id ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}
