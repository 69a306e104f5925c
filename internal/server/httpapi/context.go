package httpapi

import (
	"context"

	"github.com/avolkov/storefront/internal/server/models"
)

type principalContextKey struct{}

// PrincipalFromContext returns the authenticated principal attached by the
// session middleware. The principal never carries the password hash.
func PrincipalFromContext(ctx context.Context) (models.PublicUser, bool) {
	p, ok := ctx.Value(principalContextKey{}).(models.PublicUser)
	return p, ok
}

func contextWithPrincipal(ctx context.Context, p models.PublicUser) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}
