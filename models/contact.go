package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a message submitted through the contact form.
// Contacts are immutable once created; the admin console only deletes them.
type Contact struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FirstName    string    `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName     string    `json:"lastName" db:"last_name" gorm:"type:text;not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone        *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Organization *string   `json:"organization,omitempty" db:"organization" gorm:"type:text"`
	Subject      string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Budget       *string   `json:"budget,omitempty" db:"budget" gorm:"type:text"`
	Timeline     *string   `json:"timeline,omitempty" db:"timeline" gorm:"type:text"`
	Message      string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
