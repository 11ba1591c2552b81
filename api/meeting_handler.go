package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type meetingHandler struct {
	responder   Responder
	logger      zerolog.Logger
	meetingRepo *database.MeetingRepo
}

func newMeetingHandler(meetingRepo *database.MeetingRepo) meetingHandler {
	logger := log.With().Str("handlerName", "meetingHandler").Logger()

	return meetingHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		meetingRepo: meetingRepo,
	}
}

// MeetingUpdateRequest stages the two admin-editable fields committed on an
// explicit update.
type MeetingUpdateRequest struct {
	MeetingLink string `json:"meetingLink"`
	Status      string `json:"status"`
}

// createMeeting submits a meeting request on behalf of the authenticated user
func (h meetingHandler) createMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var meeting models.Meeting
		if err := json.NewDecoder(r.Body).Decode(&meeting); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if meeting.Purpose == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("purpose is required"))
			return
		}
		if meeting.Date == "" || meeting.Time == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("date and time are required"))
			return
		}

		user := ctxUser(r.Context())
		meeting.ID = uuid.New()
		meeting.Status = models.MeetingStatusPending
		meeting.MeetingLink = nil
		meeting.UserName = user.Name
		meeting.UserEmail = user.Email
		meeting.CreatedAt = time.Now().UTC()

		if err := h.meetingRepo.Add(&meeting); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create meeting", "meeting", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newMeetingView(&meeting))
	}
}

// getAllMeetings lists meetings for the console table, newest first
func (h meetingHandler) getAllMeetings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meetings, err := h.meetingRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find meetings", "meetings", err))
			return
		}

		views := make([]MeetingView, 0, len(meetings))
		for _, meeting := range meetings {
			views = append(views, newMeetingView(meeting))
		}

		h.responder.WriteJSON(w, newListResponse(views, emptyMeetings))
	}
}

// getMeeting retrieves one meeting for the detail overlay
func (h meetingHandler) getMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meetingID, err := parseIDParam(r, "meetingID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		meeting, err := h.meetingRepo.FindByID(meetingID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find meeting", "meeting", err))
			return
		}

		h.responder.WriteJSON(w, newMeetingView(meeting))
	}
}

// updateMeeting commits the staged meeting link and status. The link is only
// editable while the meeting is still pending.
func (h meetingHandler) updateMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meetingID, err := parseIDParam(r, "meetingID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req MeetingUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !models.ValidMeetingStatus(req.Status) {
			h.responder.WriteError(w, errs.NewValidationError("status",
				fmt.Sprintf("invalid meeting status: %s", req.Status)))
			return
		}

		existing, err := h.meetingRepo.FindByID(meetingID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find meeting", "meeting", err))
			return
		}

		if existing.Status != models.MeetingStatusPending {
			h.responder.WriteError(w, errs.NewConflictError("only pending meetings can be updated"))
			return
		}

		if err := h.meetingRepo.UpdateSchedule(meetingID, req.MeetingLink, req.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update meeting", "meeting", err))
			return
		}

		updated, err := h.meetingRepo.FindByID(meetingID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated meeting", "meeting", err))
			return
		}

		h.responder.WriteJSON(w, newMeetingView(updated))
	}
}

// deleteMeeting removes a meeting after the client-side confirmation step
func (h meetingHandler) deleteMeeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meetingID, err := parseIDParam(r, "meetingID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.meetingRepo.FindByID(meetingID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find meeting", "meeting", err))
			return
		}

		if err := h.meetingRepo.Delete(meetingID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete meeting", "meeting", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "meeting deleted successfully",
		})
	}
}
