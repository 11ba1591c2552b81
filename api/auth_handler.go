package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/auth"
	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/ahqjohn/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	cfg         config.App
	tokens      auth.TokenIssuer
	oauth       auth.OAuthRedirects
	userRepo    *database.UserRepo
	sessionRepo *database.SessionRepo
	mailer      services.Mailer
}

func newAuthHandler(cfg config.App, tokens auth.TokenIssuer, userRepo *database.UserRepo, sessionRepo *database.SessionRepo, mailer services.Mailer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		cfg:         cfg,
		tokens:      tokens,
		oauth:       auth.NewOAuthRedirects(cfg),
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
	}
}

// SignupRequest is the account-creation payload
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Organization    string `json:"organization"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the session-creation payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries the issued token and the page the client should
// navigate to for the resolved role.
type SessionResponse struct {
	Token    string   `json:"token"`
	User     UserView `json:"user"`
	Role     string   `json:"role"`
	Redirect string   `json:"redirect"`
}

func (h authHandler) createSession(user *models.User) (SessionResponse, error) {
	session := models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(h.cfg.SessionTTL),
	}
	if err := h.sessionRepo.Add(&session); err != nil {
		return SessionResponse{}, wrapDatabaseError("create session", "session", err)
	}

	token, err := h.tokens.Issue(session.ID, user.Email, h.cfg.SessionTTL)
	if err != nil {
		return SessionResponse{}, errs.NewInternalError("could not issue session token")
	}

	role := auth.RoleUser
	if h.cfg.IsAdminEmail(user.Email) {
		role = auth.RoleAdmin
	}

	return SessionResponse{
		Token:    token,
		User:     newUserView(user),
		Role:     string(role),
		Redirect: auth.RedirectTarget(role),
	}, nil
}

// signup validates the password pre-flight, then creates the account, the
// user document, and a fresh session in that order. Validation failures are
// reported before any account call is made.
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req SignupRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode signup request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email is required"))
			return
		}
		if req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}

		if err := auth.ValidatePassword(req.Password, req.ConfirmPassword); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("user"))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("could not hash password"))
			return
		}

		user := models.User{
			ID:           uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if req.Organization != "" {
			user.Organization = &req.Organization
		}
		if req.Role != "" {
			user.Role = &req.Role
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		// Login after signup
		response, err := h.createSession(&user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, response)
	}
}

// login creates an email/password session
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		response, err := h.createSession(user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// logout destroys the current session
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		sessionID, err := h.tokens.Parse(token)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.sessionRepo.Delete(sessionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete session", "session", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":   "success",
			"redirect": auth.PageLogin,
		})
	}
}

// me reports the probe outcome for the current request: the resolved role,
// the user when authenticated, and the page this role belongs on.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := ctxRole(r.Context())

		response := map[string]interface{}{
			"role":     string(role),
			"redirect": auth.RedirectTarget(role),
		}
		if user := ctxUser(r.Context()); user != nil {
			response["user"] = newUserView(user)
		}

		h.responder.WriteJSON(w, response)
	}
}

// recoverPassword dispatches the password-recovery email. The reset link
// points at the fixed reset page on the site origin.
func (h authHandler) recoverPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email is required"))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		// An unknown address gets the same response; recovery must not leak
		// which emails have accounts.
		if user != nil {
			resetURL := fmt.Sprintf("%s/reset-password.html", h.cfg.SiteOrigin)
			if err := h.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
				h.logger.Error().Err(err).Msg("Failed to send password reset email")
				h.responder.WriteError(w, errs.NewInternalError("could not send recovery email"))
				return
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "Password reset email sent! Check your inbox.",
		})
	}
}

// oauthRedirect sends the browser into the provider's authorization flow
func (h authHandler) oauthRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")

		state := uuid.NewString()
		loginURL, err := h.oauth.LoginURL(provider, state)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.Redirect(w, r, loginURL, http.StatusTemporaryRedirect)
	}
}
