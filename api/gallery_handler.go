package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/localstore"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *localstore.Store
}

func newGalleryHandler(store *localstore.Store) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// GalleryItemRequest is the payload for adding one gallery entry. Google
// Drive sharing URLs are rewritten to direct embed URLs on the way in.
type GalleryItemRequest struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// listAll returns the whole project-to-gallery mapping
func (h galleryHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.AllMedia())
	}
}

// listProject returns the gallery for one project
func (h galleryHandler) listProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		items := h.store.MediaFor(projectID)
		h.responder.WriteJSON(w, newListResponse(items, emptyMedia))
	}
}

// addItem appends a media item to a project gallery
func (h galleryHandler) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var req GalleryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.URL == "" {
			h.responder.WriteError(w, errs.NewValidationError("url", "url is required"))
			return
		}
		if req.Type != "image" && req.Type != "video" {
			h.responder.WriteError(w, errs.NewValidationError("type", "type must be image or video"))
			return
		}

		// The submitted URL is always kept alongside the embed form, even
		// when no rewrite applied.
		item := localstore.MediaItem{
			Type:        req.Type,
			URL:         localstore.ConvertGoogleDriveURL(req.URL, req.Type),
			Caption:     req.Caption,
			OriginalURL: req.URL,
		}

		if err := h.store.AppendMedia(projectID, item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, item)
	}
}

// removeItem deletes the gallery entry at a positional index
func (h galleryHandler) removeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("index must be an integer"))
			return
		}

		if err := h.store.RemoveMedia(projectID, index); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "media removed successfully",
		})
	}
}
