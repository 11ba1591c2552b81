package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/ahqjohn/portfolio-backend/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type seoHandler struct {
	responder    Responder
	logger       zerolog.Logger
	cfg          config.App
	settingsRepo *database.SettingsRepo
}

func newSEOHandler(cfg config.App, settingsRepo *database.SettingsRepo) seoHandler {
	logger := log.With().Str("handlerName", "seoHandler").Logger()

	return seoHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		cfg:          cfg,
		settingsRepo: settingsRepo,
	}
}

// currentSettings loads the stored settings document, falling back to the
// hardcoded defaults when none has been saved.
func (h seoHandler) currentSettings() (seo.Settings, error) {
	stored, err := h.settingsRepo.GetSEO()
	if err != nil {
		return seo.Settings{}, wrapDatabaseError("find seo settings", "settings", err)
	}
	if stored == nil {
		return seo.DefaultSettings(), nil
	}
	return seo.FromModel(stored), nil
}

// getSettings returns the active metadata mapping (stored or defaults)
func (h seoHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.currentSettings()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// updateSettings replaces the single site-wide settings document
func (h seoHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req seo.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.HomeTitle == "" {
			h.responder.WriteError(w, errs.NewValidationError("homeTitle", "home title is required"))
			return
		}
		if req.SchemaData != "" && !json.Valid([]byte(req.SchemaData)) {
			h.responder.WriteError(w, errs.NewValidationError("schemaData", "schema data must be valid JSON"))
			return
		}

		settings := models.SEOSettings{
			HomeTitle:       req.HomeTitle,
			HomeDescription: req.HomeDescription,
			HomeKeywords:    req.HomeKeywords,
			OGTitle:         req.OGTitle,
			OGDescription:   req.OGDescription,
			OGImage:         req.OGImage,
			UpdatedAt:       time.Now().UTC(),
		}
		if req.SchemaData != "" {
			settings.SchemaData = datatypes.JSON(req.SchemaData)
		}

		if err := h.settingsRepo.SaveSEO(&settings); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save seo settings", "settings", err))
			return
		}

		h.responder.WriteJSON(w, seo.FromModel(&settings))
	}
}

// HeadResponse carries the synchronized head both as structured tags and as
// rendered HTML, so clients can pick either form.
type HeadResponse struct {
	Title          string        `json:"title"`
	MetaTags       []seo.MetaTag `json:"metaTags"`
	StructuredData string        `json:"structuredData,omitempty"`
	HTML           string        `json:"html"`
}

// renderHead applies the active settings to a fresh head model for the page
// named by the url query parameter (defaulting to the site origin).
func (h seoHandler) renderHead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.currentSettings()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		pageURL := r.URL.Query().Get("url")
		if pageURL == "" {
			pageURL = h.cfg.SiteOrigin
		}

		head := seo.NewHead()
		seo.Apply(head, settings, pageURL)

		h.responder.WriteJSON(w, HeadResponse{
			Title:          head.Title,
			MetaTags:       head.MetaTags(),
			StructuredData: head.StructuredData(),
			HTML:           head.Render(),
		})
	}
}
