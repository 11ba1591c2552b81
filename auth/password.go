package auth

import (
	"github.com/ahqjohn/portfolio-backend/errs"
	"golang.org/x/crypto/bcrypt"
)

// Signup validation messages surfaced inline before any account call is made.
const (
	MsgPasswordMismatch = "Passwords do not match!"
	MsgPasswordTooShort = "Password must be at least 8 characters long!"
)

const minPasswordLength = 8

// ValidatePassword runs the pre-flight signup checks. It returns a
// validation error before any account creation is attempted.
func ValidatePassword(password, confirmPassword string) error {
	if password != confirmPassword {
		return errs.NewValidationError("password", MsgPasswordMismatch)
	}
	if len(password) < minPasswordLength {
		return errs.NewValidationError("password", MsgPasswordTooShort)
	}
	return nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
