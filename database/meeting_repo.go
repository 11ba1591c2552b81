package database

import (
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepo struct {
	db *gorm.DB
}

func NewMeetingRepo(db *gorm.DB) *MeetingRepo {
	return &MeetingRepo{db}
}

// FindAll returns all meetings ordered by creation time descending
func (r *MeetingRepo) FindAll() ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.Order("created_at DESC").Find(&meetings).Error
	return meetings, err
}

// FindUpcoming returns meetings scheduled on or after date, soonest first,
// up to limit. Dates are ISO yyyy-mm-dd strings so lexical order is
// chronological order.
func (r *MeetingRepo) FindUpcoming(date string, limit int) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.Where("date >= ?", date).Order("date ASC").Limit(limit).Find(&meetings).Error
	return meetings, err
}

// FindByID returns a meeting by its ID
func (r *MeetingRepo) FindByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Add inserts a new meeting into the database
func (r *MeetingRepo) Add(meeting *models.Meeting) error {
	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	if meeting.Status == "" {
		meeting.Status = models.MeetingStatusPending
	}
	return r.db.Create(meeting).Error
}

// UpdateSchedule stages exactly the two admin-editable fields: the meeting
// link and the status badge value.
func (r *MeetingRepo) UpdateSchedule(id uuid.UUID, meetingLink, status string) error {
	return r.db.Model(&models.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"meeting_link": meetingLink,
			"status":       status,
		}).Error
}

// Delete removes a meeting from the database by id
func (r *MeetingRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Meeting{}, "id = ?", id).Error
}

// Count returns the total number of meetings
func (r *MeetingRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Meeting{}).Count(&count).Error
	return count, err
}
