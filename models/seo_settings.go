package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SEOSettings holds the site-wide metadata synchronized into the document
// head on page load. A single row lives in the settings collection; when it
// is absent the injector falls back to hardcoded defaults.
type SEOSettings struct {
	ID              uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	HomeTitle       string         `json:"homeTitle" db:"home_title" gorm:"type:text;not null"`
	HomeDescription string         `json:"homeDescription" db:"home_description" gorm:"type:text;not null"`
	HomeKeywords    string         `json:"homeKeywords" db:"home_keywords" gorm:"type:text;not null"`
	OGTitle         string         `json:"ogTitle" db:"og_title" gorm:"type:text;not null"`
	OGDescription   string         `json:"ogDescription" db:"og_description" gorm:"type:text;not null"`
	OGImage         string         `json:"ogImage" db:"og_image" gorm:"type:text;not null"`
	SchemaData      datatypes.JSON `json:"schemaData,omitempty" db:"schema_data" gorm:"type:jsonb"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
