package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/localstore"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/ahqjohn/portfolio-backend/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	cfg         config.App
	contactRepo *database.ContactRepo
	mailer      services.Mailer
	demoStore   *localstore.Store
}

func newContactHandler(cfg config.App, contactRepo *database.ContactRepo, mailer services.Mailer, demoStore *localstore.Store) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		cfg:         cfg,
		contactRepo: contactRepo,
		mailer:      mailer,
		demoStore:   demoStore,
	}
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Subject      string `json:"subject"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Message      string `json:"message"`
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// createContact records a contact-form message and notifies the admins. The
// message is stored even when the notification mail fails.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		switch {
		case req.FirstName == "":
			h.responder.WriteError(w, errs.NewValidationError("firstName", "first name is required"))
			return
		case req.LastName == "":
			h.responder.WriteError(w, errs.NewValidationError("lastName", "last name is required"))
			return
		case req.Email == "":
			h.responder.WriteError(w, errs.NewValidationError("email", "email is required"))
			return
		case req.Subject == "":
			h.responder.WriteError(w, errs.NewValidationError("subject", "subject is required"))
			return
		case req.Message == "":
			h.responder.WriteError(w, errs.NewValidationError("message", "message is required"))
			return
		}

		contact := models.Contact{
			ID:           uuid.New(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        optional(req.Phone),
			Organization: optional(req.Organization),
			Subject:      req.Subject,
			Budget:       optional(req.Budget),
			Timeline:     optional(req.Timeline),
			Message:      req.Message,
			CreatedAt:    time.Now().UTC(),
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "contact", err))
			return
		}

		if err := h.mailer.SendContactNotification(contact, h.cfg.AdminEmails); err != nil {
			// The submission already succeeded; a failed notification is ours
			// to deal with, not the visitor's.
			h.logger.Error().Err(err).Str("contactId", contact.ID.String()).Msg("Failed to send contact notification")
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]string{
			"status":  "success",
			"message": "Message sent successfully!",
		})
	}
}

// getAllContacts lists contact messages for the console table, newest first
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		views := make([]ContactView, 0, len(contacts))
		for _, contact := range contacts {
			views = append(views, newContactView(contact))
		}

		h.responder.WriteJSON(w, newListResponse(views, emptyContacts))
	}
}

// getContact retrieves one contact message for the detail overlay
func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, newContactView(contact))
	}
}

// deleteContact removes a contact message. Messages are immutable so delete
// is the only mutation the console offers.
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contactRepo.FindByID(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", err))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}

// createDemoContact captures a contact submission in the local demo store
// instead of the real backend. No mail goes out for demo submissions.
func (h contactHandler) createDemoContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("at least one field is required"))
			return
		}

		if err := h.demoStore.AppendContact(fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to persist demo contact submission")
			h.responder.WriteError(w, errs.NewInternalError("could not record submission"))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]string{
			"status":  "success",
			"message": "Message sent successfully!",
		})
	}
}
