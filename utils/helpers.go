package utils

import (
	"context"
	"net/http"

	"github.com/testvar-app/testvar-api/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// WithClaims attaches verified token claims to the request context.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the verified claims for r, if the request passed
// through the auth middleware.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*auth.Claims)
	return claims, ok
}
