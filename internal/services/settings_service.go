package services

import (
	"errors"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

var ErrRoleNotAvailable = errors.New("role not available for this user")

type SettingsUserStore interface {
	UpdateActiveRole(userID uint, role string) error
	UpdateTimezone(userID uint, timezone string) error
	UpdateNotificationPrefs(userID uint, prefs map[string]any) error
}

// NotificationPreferences mirrors the per-user email toggles.
type NotificationPreferences struct {
	EmailCheckInReminders bool
	EmailMealPlanUpdates  bool
}

// SettingsService covers the account-level switches: active role, timezone,
// and email preferences.
type SettingsService struct {
	users SettingsUserStore
}

func NewSettingsService(users SettingsUserStore) *SettingsService {
	return &SettingsService{users: users}
}

// SwitchRole flips the active role, but only onto a role the user actually
// holds.
func (service *SettingsService) SwitchRole(user models.User, role string) error {
	switch role {
	case models.RoleCoach:
		if !user.IsCoach {
			return ErrRoleNotAvailable
		}
	case models.RoleClient:
		if !user.IsClient {
			return ErrRoleNotAvailable
		}
	default:
		return NewValidationError("role", "Unknown role")
	}
	return service.users.UpdateActiveRole(user.ID, role)
}

// UpdateTimezone stores an IANA zone name after verifying it loads.
func (service *SettingsService) UpdateTimezone(user models.User, timezone string) error {
	if timezone == "" {
		return NewValidationError("timezone", "Timezone is required")
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return NewValidationError("timezone", "Unknown timezone")
	}
	return service.users.UpdateTimezone(user.ID, timezone)
}

func (service *SettingsService) UpdateNotificationPreferences(user models.User, prefs NotificationPreferences) error {
	if !user.IsClient {
		return ErrNotClient
	}
	return service.users.UpdateNotificationPrefs(user.ID, map[string]any{
		"email_check_in_reminders": prefs.EmailCheckInReminders,
		"email_meal_plan_updates":  prefs.EmailMealPlanUpdates,
	})
}
