package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/testvar-app/testvar-api/auth"
	"github.com/testvar-app/testvar-api/utils"
)

// RequireAuth guards a handler with bearer-token verification. A missing
// token is 401 "Access Denied"; a present but invalid, expired, or
// tampered token is 403 "Invalid Token". Verified claims are attached to
// the request context for the handler.
func RequireAuth(secret []byte) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "Access Denied")
				return
			}

			claims, err := auth.VerifyToken(secret, token)
			if err != nil {
				log.Printf("RequireAuth: token rejected: %v", err)
				respondError(w, http.StatusForbidden, "Invalid Token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("respondError: encode failed: %v", err)
	}
}
