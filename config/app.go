package config

import "time"

// App is the explicit application configuration built once at startup and
// injected into the packages that need it. Admin authorization is a set of
// allowed addresses rather than a single hardcoded email.
type App struct {
	Port            string
	AcceptedOrigins []string

	// SiteOrigin is the public origin of the static site; OAuth success and
	// failure redirects are resolved relative to it.
	SiteOrigin string

	AdminEmails []string

	JWTSecret  string
	SessionTTL time.Duration

	MediaBucket string
	AWSRegion   string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	GoogleClientID     string
	GoogleClientSecret string
	GithubClientID     string
	GithubClientSecret string

	ResendAPIKey    string
	ResendFromEmail string

	LocalStorePath string
}

// NewApp reads the application configuration from an environment map.
func NewApp(c map[string]string) App {
	return App{
		Port:            GetString(c, "PORT", "8080"),
		AcceptedOrigins: GetStrings(c, "ACCEPTED_ORIGINS"),

		SiteOrigin: GetString(c, "SITE_ORIGIN", "http://localhost:3000"),

		AdminEmails: GetStrings(c, "ADMIN_EMAILS"),

		JWTSecret:  GetString(c, "JWT_SECRET", ""),
		SessionTTL: time.Duration(GetInt(c, "SESSION_TTL_HOURS", 168)) * time.Hour,

		MediaBucket: GetString(c, "MEDIA_BUCKET", "media_files"),
		AWSRegion:   GetString(c, "AWS_REGION", "us-east-1"),
		S3Endpoint:  GetString(c, "S3_ENDPOINT", ""),
		S3AccessKey: GetString(c, "S3_ACCESS_KEY", ""),
		S3SecretKey: GetString(c, "S3_SECRET_KEY", ""),

		GoogleClientID:     GetString(c, "GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetString(c, "GOOGLE_CLIENT_SECRET", ""),
		GithubClientID:     GetString(c, "GITHUB_CLIENT_ID", ""),
		GithubClientSecret: GetString(c, "GITHUB_CLIENT_SECRET", ""),

		ResendAPIKey:    GetString(c, "RESEND_API_KEY", ""),
		ResendFromEmail: GetString(c, "RESEND_FROM_EMAIL", ""),

		LocalStorePath: GetString(c, "LOCAL_STORE_PATH", "localstore.json"),
	}
}

// IsAdminEmail reports whether email exactly matches one of the configured
// administrator addresses. Comparison is case-sensitive.
func (a App) IsAdminEmail(email string) bool {
	for _, admin := range a.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
