package api

import (
	"github.com/ahqjohn/portfolio-backend/auth"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps) *routeHandlers {
	tokens := auth.NewTokenIssuer(deps.Config.JWTSecret)

	return &routeHandlers{
		authHandler: newAuthHandler(deps.Config, tokens,
			deps.Database.UserRepo(), deps.Database.SessionRepo(), deps.Mailer),
		proposalHandler:  newProposalHandler(deps.Database.ProposalRepo()),
		meetingHandler:   newMeetingHandler(deps.Database.MeetingRepo()),
		userHandler:      newUserHandler(deps.Database.UserRepo()),
		contactHandler:   newContactHandler(deps.Config, deps.Database.ContactRepo(), deps.Mailer, deps.LocalStore),
		mediaHandler:     newMediaHandler(deps.MediaStore),
		dashboardHandler: newDashboardHandler(deps.Database.UserRepo(), deps.Database.ProposalRepo(), deps.Database.MeetingRepo()),
		seoHandler:       newSEOHandler(deps.Config, deps.Database.SettingsRepo()),
		galleryHandler:   newGalleryHandler(deps.LocalStore),
	}
}
