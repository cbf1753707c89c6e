package models

import "time"

const (
	CheckInStatusSubmitted = "SUBMITTED"
	CheckInStatusReviewed  = "REVIEWED"
)

// MaxCheckInPhotos caps the photo attachments per check-in.
const MaxCheckInPhotos = 3

// CheckIn is one client submission. WeekOf is the legacy Monday-normalized
// grouping key. LocalDate is the calendar date of SubmittedAt in the client's
// timezone and is the dedup key among non-deleted rows. IsPrimary survives
// from the primary/secondary era and is never written by current code.
type CheckIn struct {
	ID             uint      `gorm:"primaryKey"`
	ClientID       uint      `gorm:"not null;index:idx_check_ins_client_week;index:idx_check_ins_client_local_date"`
	WeekOf         time.Time `gorm:"not null;index:idx_check_ins_client_week"`
	SubmittedAt    time.Time `gorm:"not null"`
	LocalDate      string    `gorm:"index:idx_check_ins_client_local_date"`
	Timezone       string
	Weight         *float64
	DietCompliance *int
	EnergyLevel    *int
	Notes          string
	Status         string `gorm:"not null;default:SUBMITTED"`
	IsPrimary      bool   `gorm:"not null;default:true"`
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (entry CheckIn) IsDeleted() bool {
	return entry.DeletedAt != nil
}

type CheckInPhoto struct {
	ID          uint   `gorm:"primaryKey"`
	CheckInID   uint   `gorm:"not null;index"`
	StoragePath string `gorm:"not null"`
	SortOrder   int    `gorm:"not null;default:0"`
}
