package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public, authenticated, and admin route groups. The
// session probe runs for every group so handlers can see the resolved role.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.resolve)

		// Session lifecycle
		r.Post("/auth/signup", handlers.authHandler.signup())
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.Get("/auth/me", handlers.authHandler.me())
		r.Post("/auth/recover", handlers.authHandler.recoverPassword())
		r.Get("/auth/oauth/{provider}", handlers.authHandler.oauthRedirect())

		// Public site surface
		r.Post("/contact", handlers.contactHandler.createContact())
		r.Post("/contact/demo", handlers.contactHandler.createDemoContact())
		r.Get("/seo/head", handlers.seoHandler.renderHead())
		r.Get("/seo/settings", handlers.seoHandler.getSettings())

		// Project gallery demo store
		r.Get("/gallery", handlers.galleryHandler.listAll())
		r.Get("/gallery/{projectID}", handlers.galleryHandler.listProject())
		r.Post("/gallery/{projectID}", handlers.galleryHandler.addItem())
		r.Delete("/gallery/{projectID}/{index}", handlers.galleryHandler.removeItem())

		// Authenticated user routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireUser)

			r.Post("/proposal", handlers.proposalHandler.createProposal())
			r.Post("/meeting", handlers.meetingHandler.createMeeting())
		})

		// Admin console routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Get("/admin/dashboard", handlers.dashboardHandler.stats())

			r.Get("/admin/proposals", handlers.proposalHandler.getAllProposals())
			r.Get("/admin/proposal/{proposalID}", handlers.proposalHandler.getProposal())
			r.Put("/admin/proposal/{proposalID}", handlers.proposalHandler.updateProposal())
			r.Delete("/admin/proposal/{proposalID}", handlers.proposalHandler.deleteProposal())

			r.Get("/admin/meetings", handlers.meetingHandler.getAllMeetings())
			r.Get("/admin/meeting/{meetingID}", handlers.meetingHandler.getMeeting())
			r.Put("/admin/meeting/{meetingID}", handlers.meetingHandler.updateMeeting())
			r.Delete("/admin/meeting/{meetingID}", handlers.meetingHandler.deleteMeeting())

			r.Get("/admin/users", handlers.userHandler.getAllUsers())

			r.Get("/admin/contacts", handlers.contactHandler.getAllContacts())
			r.Get("/admin/contact/{contactID}", handlers.contactHandler.getContact())
			r.Delete("/admin/contact/{contactID}", handlers.contactHandler.deleteContact())

			r.Get("/admin/media", handlers.mediaHandler.listFiles())
			r.Post("/admin/media", handlers.mediaHandler.uploadFile())
			r.Delete("/admin/media/{fileID}", handlers.mediaHandler.deleteFile())

			r.Put("/admin/seo/settings", handlers.seoHandler.updateSettings())
		})
	})
}
