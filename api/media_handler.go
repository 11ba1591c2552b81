package api

import (
	"context"
	"io"
	"net/http"

	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/storage"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MediaStore is the bucket surface the media library needs. Satisfied by
// storage.S3MediaStore; the returned file descriptions carry the derived
// view, preview, and download URLs.
type MediaStore interface {
	Upload(ctx context.Context, name, mimeType, fileType string, body io.Reader, size int64) (storage.MediaFile, error)
	List(ctx context.Context) ([]storage.MediaFile, error)
	Delete(ctx context.Context, id string) error
}

// Multipart uploads are capped at 50MB, matching the bucket file size limit.
const maxUploadBytes = 50 << 20

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     MediaStore
}

func newMediaHandler(store MediaStore) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadFile stores a multipart upload in the media bucket. An optional
// fileType form value becomes the id prefix; untagged uploads get "media".
func (h mediaHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("expected a multipart upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "file is required"))
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		fileType := r.FormValue("fileType")

		uploaded, err := h.store.Upload(r.Context(), header.Filename, mimeType, fileType, file, header.Size)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, uploaded)
	}
}

// listFiles returns every file in the media bucket for the library grid
func (h mediaHandler) listFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := h.store.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newListResponse(files, emptyMedia))
	}
}

// deleteFile removes one file from the media bucket by id
func (h mediaHandler) deleteFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID := chi.URLParam(r, "fileID")
		if fileID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing fileID"))
			return
		}

		if err := h.store.Delete(r.Context(), fileID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "file deleted successfully",
		})
	}
}
