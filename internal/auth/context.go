package auth

import (
	"context"

	"github.com/noteshq/notesapi/internal/models"
)

type contextKey string

const userKey contextKey = "user"

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the authenticated user, or nil on routes that did
// not pass through the auth middleware.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}
