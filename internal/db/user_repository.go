package db

import (
	"github.com/steadfast-app/steadfast/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByExternalID(externalID string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("external_id = ?", externalID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByCoachCode(code string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("coach_code = ?", code).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateActiveRole(userID uint, role string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("active_role", role).Error
}

func (repo *UserRepository) UpdateTimezone(userID uint, timezone string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("timezone", timezone).Error
}

func (repo *UserRepository) UpdateNotificationPrefs(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) UpdateScheduleDays(userID uint, days []int) error {
	user, err := repo.FindByID(userID)
	if err != nil {
		return err
	}
	user.CheckInDaysOfWeek = days
	return repo.database.Save(&user).Error
}

func (repo *UserRepository) SetCoachCode(userID uint, code string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("coach_code", code).Error
}
