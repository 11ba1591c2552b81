package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-tracked authenticated context. It is created at login,
// referenced by ID from the bearer token, and destroyed at logout. A token
// whose session row no longer exists is treated as anonymous.
type Session struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;index"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at" gorm:"type:timestamp;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
