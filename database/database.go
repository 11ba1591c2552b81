package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo     *UserRepo
	sessionRepo  *SessionRepo
	proposalRepo *ProposalRepo
	meetingRepo  *MeetingRepo
	contactRepo  *ContactRepo
	settingsRepo *SettingsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:     NewUserRepo(db),
		sessionRepo:  NewSessionRepo(db),
		proposalRepo: NewProposalRepo(db),
		meetingRepo:  NewMeetingRepo(db),
		contactRepo:  NewContactRepo(db),
		settingsRepo: NewSettingsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) ProposalRepo() *ProposalRepo {
	return d.proposalRepo
}

func (d Database) MeetingRepo() *MeetingRepo {
	return d.meetingRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}
