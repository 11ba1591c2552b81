package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account's profile document
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Organization *string   `json:"organization,omitempty" db:"organization" gorm:"type:text"`
	Role         *string   `json:"role,omitempty" db:"role" gorm:"type:text"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
