package models

import "time"

// CoachClient links a coach to a client. At most one row exists per
// (coach, client) pair. CheckInDaysOverride empty means "use the coach
// default cadence".
type CoachClient struct {
	ID                  uint `gorm:"primaryKey"`
	CoachID             uint `gorm:"not null;uniqueIndex:uidx_coach_clients_pair"`
	ClientID            uint `gorm:"not null;uniqueIndex:uidx_coach_clients_pair"`
	CheckInDaysOverride []int `gorm:"serializer:json"`
	CoachNotes          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
