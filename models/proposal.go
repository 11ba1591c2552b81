package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal statuses settable through the admin console.
const (
	ProposalStatusPending    = "pending"
	ProposalStatusApproved   = "approved"
	ProposalStatusRejected   = "rejected"
	ProposalStatusInProgress = "in-progress"
	ProposalStatusCompleted  = "completed"
)

// Proposal represents a project proposal submitted by a user
type Proposal struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string    `json:"title" db:"title" gorm:"type:text;not null"`
	Type          string    `json:"type" db:"type" gorm:"type:text;not null"`
	Budget        *string   `json:"budget,omitempty" db:"budget" gorm:"type:text"`
	Timeline      string    `json:"timeline" db:"timeline" gorm:"type:text;not null"`
	StartDate     *string   `json:"startDate,omitempty" db:"start_date" gorm:"type:text"`
	Description   string    `json:"description" db:"description" gorm:"type:text;not null"`
	Status        string    `json:"status" db:"status" gorm:"type:text;not null;default:pending"`
	AdminResponse *string   `json:"adminResponse,omitempty" db:"admin_response" gorm:"type:text"`
	UserName      string    `json:"userName" db:"user_name" gorm:"type:text;not null"`
	UserEmail     string    `json:"userEmail" db:"user_email" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// ValidProposalStatus reports whether s is one of the statuses the admin
// console may assign to a proposal.
func ValidProposalStatus(s string) bool {
	switch s {
	case ProposalStatusPending, ProposalStatusApproved, ProposalStatusRejected,
		ProposalStatusInProgress, ProposalStatusCompleted:
		return true
	}
	return false
}
