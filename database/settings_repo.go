package database

import (
	"errors"

	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

// GetSEO returns the stored SEO settings document, or nil when none has been
// saved yet and the injector should fall back to defaults.
func (r *SettingsRepo) GetSEO() (*models.SEOSettings, error) {
	var settings models.SEOSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSEO creates or replaces the single SEO settings document
func (r *SettingsRepo) SaveSEO(settings *models.SEOSettings) error {
	existing, err := r.GetSEO()
	if err != nil {
		return err
	}
	if existing != nil {
		settings.ID = existing.ID
	} else if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	return r.db.Save(settings).Error
}
