package auth

import (
	"time"

	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs and verifies the bearer tokens that reference
// server-tracked sessions.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) TokenIssuer {
	return TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token carrying the session id and the account email.
func (t TokenIssuer) Issue(sessionID uuid.UUID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sessionID.String(),
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies a token and returns the session id it references.
func (t TokenIssuer) Parse(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errs.NewInvalidTokenError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errs.NewInvalidTokenError(nil)
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return uuid.Nil, errs.NewInvalidTokenError(nil)
	}

	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError(err)
	}
	return sessionID, nil
}
