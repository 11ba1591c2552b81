package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/localstore"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/ahqjohn/portfolio-backend/services"
	"github.com/ahqjohn/portfolio-backend/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminEmail = "admin@example.com"

type testEnv struct {
	router *chi.Mux
	db     database.Database
	cfg    config.App
	media  *fakeMediaStore
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	media := &fakeMediaStore{}

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Proposal{},
		&models.Meeting{},
		&models.Contact{},
		&models.SEOSettings{},
	))

	cfg := config.App{
		Port:            "0",
		SiteOrigin:      "http://localhost:3000",
		AcceptedOrigins: []string{"http://localhost:3000"},
		AdminEmails:     []string{testAdminEmail},
		JWTSecret:       "server-test-secret",
		SessionTTL:      time.Hour,
	}

	store, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	db := database.New(gormDB)
	router := newRouter(Deps{
		Config:     cfg,
		Database:   db,
		MediaStore: media,
		LocalStore: store,
		Mailer:     services.NewMailer(cfg),
	})

	return testEnv{router: router, db: db, cfg: cfg, media: media}
}

// fakeMediaStore keeps uploaded files in memory with the same derived URL
// shape the bucket store produces.
type fakeMediaStore struct {
	files []storage.MediaFile
}

func (f *fakeMediaStore) Upload(_ context.Context, name, mimeType, fileType string, _ io.Reader, size int64) (storage.MediaFile, error) {
	id := storage.NewFileID(fileType)
	file := storage.MediaFile{
		ID:          id,
		Name:        name,
		MimeType:    mimeType,
		Size:        size,
		Kind:        storage.KindOf(mimeType),
		URL:         "https://bucket.test/" + id,
		PreviewURL:  "https://bucket.test/" + id + "?width=500&height=500",
		DownloadURL: "https://bucket.test/" + id + "?download=1",
	}
	f.files = append(f.files, file)
	return file, nil
}

func (f *fakeMediaStore) List(_ context.Context) ([]storage.MediaFile, error) {
	return f.files, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, id string) error {
	for i, file := range f.files {
		if file.ID == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			return nil
		}
	}
	return nil
}

func (e testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func (e testEnv) signup(t *testing.T, email string) SessionResponse {
	t.Helper()

	recorder := e.request(t, http.MethodPost, "/auth/signup", "", SignupRequest{
		Name:            "Test User",
		Email:           email,
		Password:        "longenough",
		ConfirmPassword: "longenough",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response SessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestSignupShortPasswordCreatesNoAccount(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/auth/signup", "", SignupRequest{
		Name:            "Test User",
		Email:           "short@example.com",
		Password:        "short",
		ConfirmPassword: "short",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Password must be at least 8 characters long!")

	user, err := env.db.UserRepo().FindByEmail("short@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignupMismatchedPasswordsCreateNoAccount(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/auth/signup", "", SignupRequest{
		Name:            "Test User",
		Email:           "mismatch@example.com",
		Password:        "longenough",
		ConfirmPassword: "different1",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Passwords do not match!")

	user, err := env.db.UserRepo().FindByEmail("mismatch@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignupLoginAndProbe(t *testing.T) {
	env := newTestEnv(t)

	session := env.signup(t, "user@example.com")
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "user", session.Role)
	assert.Equal(t, "user-dashboard.html", session.Redirect)

	recorder := env.request(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "user@example.com",
		Password: "longenough",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login SessionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))

	probe := env.request(t, http.MethodGet, "/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, probe.Code)
	body := decodeBody(t, probe)
	assert.Equal(t, "user", body["role"])
	assert.Equal(t, "user-dashboard.html", body["redirect"])
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "user@example.com")

	recorder := env.request(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminEmailGetsAdminRole(t *testing.T) {
	env := newTestEnv(t)

	session := env.signup(t, testAdminEmail)
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, "admin.html", session.Redirect)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	session := env.signup(t, "user@example.com")

	recorder := env.request(t, http.MethodPost, "/auth/logout", session.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// The token still verifies, but its session row is gone.
	probe := env.request(t, http.MethodGet, "/auth/me", session.Token, nil)
	require.Equal(t, http.StatusOK, probe.Code)
	assert.Equal(t, "anonymous", decodeBody(t, probe)["role"])
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "user@example.com")

	anonymous := env.request(t, http.MethodGet, "/admin/proposals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	nonAdmin := env.request(t, http.MethodGet, "/admin/proposals", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, nonAdmin.Code)
}

func TestUserRoutesRejectAnonymous(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/proposal", "", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestProposalSubmitAndAdminReview(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "user@example.com")
	admin := env.signup(t, testAdminEmail)

	created := env.request(t, http.MethodPost, "/proposal", user.Token, map[string]string{
		"title":       "Bengali ANPR pipeline",
		"type":        "consulting",
		"timeline":    "1 month",
		"description": "Deploy ANPR at the port gate",
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var view ProposalView
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &view))
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, "Not specified", view.Budget)
	assert.Equal(t, "user@example.com", view.UserEmail)

	updated := env.request(t, http.MethodPut, "/admin/proposal/"+view.ID, admin.Token, ProposalUpdateRequest{
		AdminResponse: "Approved, starting next month.",
		Status:        models.ProposalStatusApproved,
	})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())

	var reviewed ProposalView
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &reviewed))
	assert.Equal(t, "approved", reviewed.Status)
	assert.Equal(t, "status-approved", reviewed.StatusBadge)
	assert.Equal(t, "Approved, starting next month.", reviewed.AdminResponse)
	assert.Equal(t, view.Title, reviewed.Title)
}

func TestProposalUpdateRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signup(t, testAdminEmail)

	recorder := env.request(t, http.MethodPut, "/admin/proposal/"+uuid.NewString(), admin.Token, ProposalUpdateRequest{
		Status: "archived",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid proposal status")
}

func TestProposalDeleteThenListShowsEmptyState(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "user@example.com")
	admin := env.signup(t, testAdminEmail)

	created := env.request(t, http.MethodPost, "/proposal", user.Token, map[string]string{
		"title": "only proposal", "type": "consulting", "timeline": "1 week", "description": "d",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var view ProposalView
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &view))

	deleted := env.request(t, http.MethodDelete, "/admin/proposal/"+view.ID, admin.Token, nil)
	require.Equal(t, http.StatusOK, deleted.Code)

	listing := env.request(t, http.MethodGet, "/admin/proposals", admin.Token, nil)
	require.Equal(t, http.StatusOK, listing.Code)

	body := decodeBody(t, listing)
	assert.EqualValues(t, 0, body["total"])
	assert.Equal(t, "No proposals found", body["message"])
}

func TestMeetingLinkOnlyEditableWhilePending(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "user@example.com")
	admin := env.signup(t, testAdminEmail)

	created := env.request(t, http.MethodPost, "/meeting", user.Token, map[string]any{
		"purpose":  "kickoff",
		"date":     "2030-01-01",
		"time":     "10:00",
		"duration": 30,
		"mode":     "online",
		"agenda":   "scope",
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var view MeetingView
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &view))
	assert.True(t, view.LinkEditable)

	confirmed := env.request(t, http.MethodPut, "/admin/meeting/"+view.ID, admin.Token, MeetingUpdateRequest{
		MeetingLink: "https://meet.example/abc",
		Status:      models.MeetingStatusConfirmed,
	})
	require.Equal(t, http.StatusOK, confirmed.Code, confirmed.Body.String())

	var updated MeetingView
	require.NoError(t, json.Unmarshal(confirmed.Body.Bytes(), &updated))
	assert.Equal(t, "https://meet.example/abc", updated.MeetingLink)
	assert.False(t, updated.LinkEditable)

	// A second update is rejected now that the meeting left pending.
	again := env.request(t, http.MethodPut, "/admin/meeting/"+view.ID, admin.Token, MeetingUpdateRequest{
		MeetingLink: "https://meet.example/changed",
		Status:      models.MeetingStatusCompleted,
	})
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestContactFormValidationAndStorage(t *testing.T) {
	env := newTestEnv(t)

	missing := env.request(t, http.MethodPost, "/contact", "", map[string]string{
		"firstName": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	valid := env.request(t, http.MethodPost, "/contact", "", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"subject":   "Collaboration",
		"message":   "Hello there",
	})
	require.Equal(t, http.StatusCreated, valid.Code, valid.Body.String())
	assert.Contains(t, valid.Body.String(), "Message sent successfully!")

	contacts, err := env.db.ContactRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "ada@example.com", contacts[0].Email)
}

func TestGalleryDriveURLConversionAndRemoval(t *testing.T) {
	env := newTestEnv(t)

	added := env.request(t, http.MethodPost, "/gallery/anpr", "", GalleryItemRequest{
		Type: "video",
		URL:  "https://drive.google.com/file/d/vid42/view?usp=sharing",
	})
	require.Equal(t, http.StatusCreated, added.Code, added.Body.String())

	var item localstore.MediaItem
	require.NoError(t, json.Unmarshal(added.Body.Bytes(), &item))
	assert.Equal(t, "https://drive.google.com/file/d/vid42/preview", item.URL)
	assert.Equal(t, "https://drive.google.com/file/d/vid42/view?usp=sharing", item.OriginalURL)

	// The submitted URL is recorded even when no rewrite applied.
	plain := env.request(t, http.MethodPost, "/gallery/other", "", GalleryItemRequest{
		Type: "image",
		URL:  "https://example.com/photo.jpg",
	})
	require.Equal(t, http.StatusCreated, plain.Code)

	var plainItem localstore.MediaItem
	require.NoError(t, json.Unmarshal(plain.Body.Bytes(), &plainItem))
	assert.Equal(t, "https://example.com/photo.jpg", plainItem.URL)
	assert.Equal(t, "https://example.com/photo.jpg", plainItem.OriginalURL)

	outOfRange := env.request(t, http.MethodDelete, "/gallery/anpr/5", "", nil)
	assert.Equal(t, http.StatusBadRequest, outOfRange.Code)

	removed := env.request(t, http.MethodDelete, "/gallery/anpr/0", "", nil)
	require.Equal(t, http.StatusOK, removed.Code)

	listing := env.request(t, http.MethodGet, "/gallery/anpr", "", nil)
	require.Equal(t, http.StatusOK, listing.Code)
	assert.EqualValues(t, 0, decodeBody(t, listing)["total"])
}

func TestSEOSettingsDefaultsAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signup(t, testAdminEmail)

	defaults := env.request(t, http.MethodGet, "/seo/settings", "", nil)
	require.Equal(t, http.StatusOK, defaults.Code)
	assert.Contains(t, defaults.Body.String(), "Md. Ashfaqul Haque")

	updated := env.request(t, http.MethodPut, "/admin/seo/settings", admin.Token, map[string]string{
		"homeTitle":       "Custom Title",
		"homeDescription": "Custom description",
	})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())

	stored := env.request(t, http.MethodGet, "/seo/settings", "", nil)
	require.Equal(t, http.StatusOK, stored.Code)
	assert.Contains(t, stored.Body.String(), "Custom Title")
	assert.NotContains(t, stored.Body.String(), "Md. Ashfaqul Haque")
}

func TestSEOHeadRenderIsIdempotentPerRequest(t *testing.T) {
	env := newTestEnv(t)

	first := env.request(t, http.MethodGet, "/seo/head?url=https://example.com/", "", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := env.request(t, http.MethodGet, "/seo/head?url=https://example.com/", "", nil)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())

	var head HeadResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &head))
	assert.NotEmpty(t, head.Title)
	assert.NotEmpty(t, head.MetaTags)
	assert.Contains(t, head.HTML, "<title>")
}

func TestMediaListCarriesDerivedURLs(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signup(t, testAdminEmail)

	_, err := env.media.Upload(context.Background(), "photo.png", "image/png", "media",
		bytes.NewReader([]byte("img")), 3)
	require.NoError(t, err)

	listing := env.request(t, http.MethodGet, "/admin/media", admin.Token, nil)
	require.Equal(t, http.StatusOK, listing.Code, listing.Body.String())

	var body struct {
		Total     int                 `json:"total"`
		Documents []storage.MediaFile `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(listing.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)

	file := body.Documents[0]
	assert.Contains(t, file.PreviewURL, "width=500&height=500")
	assert.Contains(t, file.DownloadURL, "download=1")
	assert.NotEmpty(t, file.URL)
}

func TestResponsesCarryJSONContentType(t *testing.T) {
	env := newTestEnv(t)

	created := env.request(t, http.MethodPost, "/auth/signup", "", SignupRequest{
		Name:            "Test User",
		Email:           "user@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Contains(t, created.Header().Get("Content-Type"), "application/json")

	// Error responses carry the header too.
	failed := env.request(t, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, failed.Code)
	assert.Contains(t, failed.Header().Get("Content-Type"), "application/json")
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "user@example.com")
	admin := env.signup(t, testAdminEmail)

	for i := 0; i < 3; i++ {
		created := env.request(t, http.MethodPost, "/proposal", user.Token, map[string]string{
			"title": fmt.Sprintf("proposal %d", i), "type": "consulting", "timeline": "1 week", "description": "d",
		})
		require.Equal(t, http.StatusCreated, created.Code)
	}

	recorder := env.request(t, http.MethodGet, "/admin/dashboard", admin.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 3, stats.TotalProposals)
	assert.EqualValues(t, 3, stats.PendingProposals)
	assert.EqualValues(t, 0, stats.TotalMeetings)
	assert.Equal(t, 3, stats.RecentProposals.Total)
	assert.Equal(t, "No upcoming meetings", stats.UpcomingMeetings.Message)
}
