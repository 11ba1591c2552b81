package database

import (
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProposalRepo struct {
	db *gorm.DB
}

func NewProposalRepo(db *gorm.DB) *ProposalRepo {
	return &ProposalRepo{db}
}

// FindAll returns all proposals ordered by creation time descending
func (r *ProposalRepo) FindAll() ([]*models.Proposal, error) {
	var proposals []*models.Proposal
	err := r.db.Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

// FindRecent returns the most recent proposals up to limit
func (r *ProposalRepo) FindRecent(limit int) ([]*models.Proposal, error) {
	var proposals []*models.Proposal
	err := r.db.Order("created_at DESC").Limit(limit).Find(&proposals).Error
	return proposals, err
}

// FindByID returns a proposal by its ID
func (r *ProposalRepo) FindByID(id uuid.UUID) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Add inserts a new proposal into the database
func (r *ProposalRepo) Add(proposal *models.Proposal) error {
	if proposal.ID == uuid.Nil {
		proposal.ID = uuid.New()
	}
	if proposal.Status == "" {
		proposal.Status = models.ProposalStatusPending
	}
	return r.db.Create(proposal).Error
}

// UpdateReview stages exactly the two admin-editable fields: the free-text
// response and the status badge value.
func (r *ProposalRepo) UpdateReview(id uuid.UUID, adminResponse, status string) error {
	return r.db.Model(&models.Proposal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"admin_response": adminResponse,
			"status":         status,
		}).Error
}

// Delete removes a proposal from the database by id
func (r *ProposalRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Proposal{}, "id = ?", id).Error
}

// Count returns the total number of proposals
func (r *ProposalRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of proposals with the given status
func (r *ProposalRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Proposal{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
