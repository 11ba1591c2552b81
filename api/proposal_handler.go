package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type proposalHandler struct {
	responder    Responder
	logger       zerolog.Logger
	proposalRepo *database.ProposalRepo
}

func newProposalHandler(proposalRepo *database.ProposalRepo) proposalHandler {
	logger := log.With().Str("handlerName", "proposalHandler").Logger()

	return proposalHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		proposalRepo: proposalRepo,
	}
}

// ProposalUpdateRequest stages the two admin-editable fields committed on
// an explicit update.
type ProposalUpdateRequest struct {
	AdminResponse string `json:"adminResponse"`
	Status        string `json:"status"`
}

// createProposal submits a new proposal on behalf of the authenticated user
func (h proposalHandler) createProposal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var proposal models.Proposal
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&proposal); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode proposal request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if proposal.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}

		// Submitter identity comes from the session, not the payload
		user := ctxUser(r.Context())
		proposal.ID = uuid.New()
		proposal.Status = models.ProposalStatusPending
		proposal.AdminResponse = nil
		proposal.UserName = user.Name
		proposal.UserEmail = user.Email
		proposal.CreatedAt = time.Now().UTC()

		if err := h.proposalRepo.Add(&proposal); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create proposal", "proposal", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newProposalView(&proposal))
	}
}

// getAllProposals lists proposals for the console table, newest first
func (h proposalHandler) getAllProposals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposals, err := h.proposalRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find proposals", "proposals", err))
			return
		}

		views := make([]ProposalView, 0, len(proposals))
		for _, proposal := range proposals {
			views = append(views, newProposalView(proposal))
		}

		h.responder.WriteJSON(w, newListResponse(views, emptyProposals))
	}
}

// getProposal retrieves one proposal for the detail overlay
func (h proposalHandler) getProposal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, err := parseIDParam(r, "proposalID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		proposal, err := h.proposalRepo.FindByID(proposalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find proposal", "proposal", err))
			return
		}

		h.responder.WriteJSON(w, newProposalView(proposal))
	}
}

// updateProposal commits the staged admin response and status, then returns
// the updated document for the refreshed table.
func (h proposalHandler) updateProposal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, err := parseIDParam(r, "proposalID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req ProposalUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !models.ValidProposalStatus(req.Status) {
			h.responder.WriteError(w, errs.NewValidationError("status",
				fmt.Sprintf("invalid proposal status: %s", req.Status)))
			return
		}

		// Verify proposal exists
		if _, err := h.proposalRepo.FindByID(proposalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find proposal", "proposal", err))
			return
		}

		if err := h.proposalRepo.UpdateReview(proposalID, req.AdminResponse, req.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update proposal", "proposal", err))
			return
		}

		updated, err := h.proposalRepo.FindByID(proposalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated proposal", "proposal", err))
			return
		}

		h.responder.WriteJSON(w, newProposalView(updated))
	}
}

// deleteProposal removes a proposal after the client-side confirmation step
func (h proposalHandler) deleteProposal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, err := parseIDParam(r, "proposalID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.proposalRepo.FindByID(proposalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find proposal", "proposal", err))
			return
		}

		if err := h.proposalRepo.Delete(proposalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete proposal", "proposal", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "proposal deleted successfully",
		})
	}
}

// parseIDParam reads a UUID path parameter shared by the entity handlers.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
