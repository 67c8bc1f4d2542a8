package graph

import (
	"context"

	"github.com/Rellinxe27/task-manager-oauth-week08/models"
)

type contextKey int

const userContextKey contextKey = iota

// WithUser attaches the authenticated user to a resolver context.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
