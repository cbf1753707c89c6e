package models

import "time"

const (
	RoleCoach  = "COACH"
	RoleClient = "CLIENT"
)

// DefaultTimezone is used whenever a user has no timezone on record.
const DefaultTimezone = "America/Los_Angeles"

type User struct {
	ID                    uint   `gorm:"primaryKey"`
	ExternalID            string `gorm:"uniqueIndex;not null"`
	Email                 string `gorm:"not null"`
	FirstName             string
	LastName              string
	IsCoach               bool    `gorm:"not null;default:false"`
	IsClient              bool    `gorm:"not null;default:true"`
	ActiveRole            string  `gorm:"not null;default:CLIENT"`
	CoachCode             *string `gorm:"uniqueIndex"`
	Timezone              string
	CheckInDaysOfWeek     []int `gorm:"serializer:json"`
	EmailCheckInReminders bool  `gorm:"not null;default:true"`
	EmailMealPlanUpdates  bool  `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// EffectiveTimezone falls back to the app default when the user never set one.
func (user User) EffectiveTimezone() string {
	if user.Timezone == "" {
		return DefaultTimezone
	}
	return user.Timezone
}

func (user User) DisplayName() string {
	switch {
	case user.FirstName != "" && user.LastName != "":
		return user.FirstName + " " + user.LastName
	case user.FirstName != "":
		return user.FirstName
	default:
		return user.Email
	}
}
