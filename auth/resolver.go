package auth

import (
	"time"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/ahqjohn/portfolio-backend/models"
)

// Role is the access level resolved for a request context.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// Fixed page names each role is sent to after the session probe.
const (
	PageLogin         = "login.html"
	PageAdmin         = "admin.html"
	PageUserDashboard = "user-dashboard.html"
)

// Resolver probes the session referenced by a bearer token and classifies
// the request context as anonymous, user, or admin. A missing, invalid, or
// expired token is confirmed-anonymous; a failed lookup is a probe error and
// is reported as such rather than being collapsed into "signed out".
type Resolver struct {
	cfg         config.App
	tokens      TokenIssuer
	sessionRepo *database.SessionRepo
	userRepo    *database.UserRepo
}

func NewResolver(cfg config.App, tokens TokenIssuer, sessionRepo *database.SessionRepo, userRepo *database.UserRepo) Resolver {
	return Resolver{
		cfg:         cfg,
		tokens:      tokens,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// Resolve returns the user and role for a bearer token. The user is nil for
// RoleAnonymous. A non-nil error means the probe failed and the role could
// not be determined.
func (r Resolver) Resolve(token string) (*models.User, Role, error) {
	if token == "" {
		return nil, RoleAnonymous, nil
	}

	sessionID, err := r.tokens.Parse(token)
	if err != nil {
		// A token that does not verify is a confirmed logout, not a failure.
		return nil, RoleAnonymous, nil
	}

	session, err := r.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, RoleAnonymous, errs.NewSessionProbeError(err)
	}
	if session == nil || session.ExpiresAt.Before(time.Now()) {
		return nil, RoleAnonymous, nil
	}

	user, err := r.userRepo.FindByID(session.UserID)
	if err != nil {
		return nil, RoleAnonymous, errs.NewSessionProbeError(err)
	}
	// A session whose account is gone is a confirmed logout, not a failed
	// probe.
	if user == nil {
		return nil, RoleAnonymous, nil
	}

	if r.cfg.IsAdminEmail(user.Email) {
		return user, RoleAdmin, nil
	}
	return user, RoleUser, nil
}

// RedirectTarget returns the fixed page a freshly probed visitor should land
// on for the given role.
func RedirectTarget(role Role) string {
	switch role {
	case RoleAdmin:
		return PageAdmin
	case RoleUser:
		return PageUserDashboard
	default:
		return PageLogin
	}
}
