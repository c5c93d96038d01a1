// Package utils holds helpers shared by the stub API and the client: request
// context values, HMAC digests, JSON responses, the resty constructor, JWT
// issuing and parsing, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-port-ops/models"
)

// contextKey keeps context keys of this package apart from string keys of
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var claimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the verified token claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ClaimsFromContext returns the claims stored by [WithClaims].
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*models.Claims)
	return claims, ok && claims != nil
}

// GetUserIDFromContext returns the subject of the stored claims. ok is false
// when no claims are stored or the subject is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
