package auth

import (
	"fmt"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/errs"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// OAuth provider identifiers accepted by the login redirect endpoint.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// OAuthRedirects builds authorization URLs for the supported providers.
// Success and failure targets are fixed pages resolved against the site
// origin, mirroring the hosted-auth redirect contract.
type OAuthRedirects struct {
	cfg config.App
}

func NewOAuthRedirects(cfg config.App) OAuthRedirects {
	return OAuthRedirects{cfg: cfg}
}

// SuccessURL is where the provider sends the browser after consent.
func (o OAuthRedirects) SuccessURL() string {
	return fmt.Sprintf("%s/%s", o.cfg.SiteOrigin, PageUserDashboard)
}

// FailureURL is where a cancelled or failed provider flow lands.
func (o OAuthRedirects) FailureURL() string {
	return fmt.Sprintf("%s/%s", o.cfg.SiteOrigin, PageLogin)
}

func (o OAuthRedirects) providerConfig(provider string) (*oauth2.Config, error) {
	switch provider {
	case ProviderGoogle:
		return &oauth2.Config{
			ClientID:     o.cfg.GoogleClientID,
			ClientSecret: o.cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  o.SuccessURL(),
			Scopes:       []string{"openid", "email", "profile"},
		}, nil
	case ProviderGithub:
		return &oauth2.Config{
			ClientID:     o.cfg.GithubClientID,
			ClientSecret: o.cfg.GithubClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  o.SuccessURL(),
			Scopes:       []string{"read:user", "user:email"},
		}, nil
	}
	return nil, errs.NewBadRequestError(fmt.Sprintf("unsupported oauth provider: %s", provider))
}

// LoginURL returns the provider authorization URL the browser should be
// redirected to. state is round-tripped through the provider for CSRF
// protection.
func (o OAuthRedirects) LoginURL(provider, state string) (string, error) {
	cfg, err := o.providerConfig(provider)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}
