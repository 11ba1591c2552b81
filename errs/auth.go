package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrMissingToken       = errors.New("missing access token")
	ErrExpiredToken       = errors.New("expired access token")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionProbe marks a failed session lookup that is NOT a confirmed
	// logout: the probe itself could not complete. Callers must not collapse
	// this into "signed out".
	ErrSessionProbe = errors.New("session probe failed")
)

func NewMissingTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrMissingToken}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrExpiredToken}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidToken, Cause: cause}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidCredentials}
}

func NewSessionProbeError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrSessionProbe,
		Details:    "Could not verify the current session",
		Cause:      cause,
	}
}

func IsSessionProbeError(err error) bool {
	return errors.Is(err, ErrSessionProbe)
}

func NewAdminRequiredError(email string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrForbidden,
		Details:    fmt.Sprintf("%s is not an administrator", email),
	}
}
