package models

import "time"

// Message belongs to a client's thread. WeekOf groups the thread by the
// Monday-normalized week it was sent in.
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	ClientID  uint      `gorm:"not null;index:idx_messages_client_week"`
	SenderID  uint      `gorm:"not null"`
	WeekOf    time.Time `gorm:"not null;index:idx_messages_client_week"`
	Body      string    `gorm:"not null"`
	CreatedAt time.Time
}
