// Package authctx carries the authenticated user through request contexts.
package authctx

import (
	"context"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// WithUser returns ctx with the resolved user attached.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the user attached by the auth middleware, if any.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
