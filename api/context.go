package api

import (
	"context"

	"github.com/ahqjohn/portfolio-backend/auth"
	"github.com/ahqjohn/portfolio-backend/models"
)

type keyType string

const (
	userKey keyType = "user"
	roleKey keyType = "role"
)

// ctxWithIdentity attaches the resolved user and role to the context. user
// is nil for anonymous requests.
func ctxWithIdentity(ctx context.Context, user *models.User, role auth.Role) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, roleKey, role)
}

// ctxUser retrieves the resolved user from the context, nil when anonymous.
func ctxUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}

// ctxRole retrieves the resolved role from the context.
func ctxRole(ctx context.Context) auth.Role {
	if role, ok := ctx.Value(roleKey).(auth.Role); ok {
		return role
	}
	return auth.RoleAnonymous
}
