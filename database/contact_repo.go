package database

import (
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact messages ordered by creation time descending
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// FindByID returns a contact message by its ID
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact message. Contact messages are never updated
// afterwards, only deleted.
func (r *ContactRepo) Add(contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	return r.db.Create(contact).Error
}

// Delete removes a contact message from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
