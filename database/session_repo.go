package database

import (
	"errors"

	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db}
}

// Add inserts a new session into the database
func (r *SessionRepo) Add(session *models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return r.db.Create(session).Error
}

// FindByID returns the session with the given ID, or nil when the session
// has been destroyed. Any other failure is a probe error, not a logout.
func (r *SessionRepo) FindByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete destroys a session by id
func (r *SessionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteForUser destroys every session belonging to a user
func (r *SessionRepo) DeleteForUser(userID uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "user_id = ?", userID).Error
}
