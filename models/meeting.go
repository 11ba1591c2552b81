package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting statuses settable through the admin console.
const (
	MeetingStatusPending   = "pending"
	MeetingStatusConfirmed = "confirmed"
	MeetingStatusCancelled = "cancelled"
	MeetingStatusCompleted = "completed"
)

// Meeting represents a meeting request submitted by a user
type Meeting struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Purpose     string    `json:"purpose" db:"purpose" gorm:"type:text;not null"`
	Date        string    `json:"date" db:"date" gorm:"type:text;not null"`
	Time        string    `json:"time" db:"time" gorm:"type:text;not null"`
	Duration    int       `json:"duration" db:"duration" gorm:"type:integer;not null"`
	Mode        string    `json:"mode" db:"mode" gorm:"type:text;not null"`
	Agenda      string    `json:"agenda" db:"agenda" gorm:"type:text;not null"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:pending"`
	MeetingLink *string   `json:"meetingLink,omitempty" db:"meeting_link" gorm:"type:text"`
	UserName    string    `json:"userName" db:"user_name" gorm:"type:text;not null"`
	UserEmail   string    `json:"userEmail" db:"user_email" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// ValidMeetingStatus reports whether s is one of the statuses the admin
// console may assign to a meeting.
func ValidMeetingStatus(s string) bool {
	switch s {
	case MeetingStatusPending, MeetingStatusConfirmed,
		MeetingStatusCancelled, MeetingStatusCompleted:
		return true
	}
	return false
}
