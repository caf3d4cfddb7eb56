package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testvar-app/testvar-api/auth"
	"github.com/testvar-app/testvar-api/utils"
)

var secret = []byte("middleware-test-secret")

func protected(t *testing.T) http.HandlerFunc {
	t.Helper()

	return RequireAuth(secret)(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaims(r)
		require.True(t, ok, "claims must be attached to the request context")
		assert.Equal(t, "alice", claims.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := auth.CreateToken(secret, 1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	protected(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access Denied"}`, rec.Body.String())
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		protected(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	token, err := auth.CreateToken([]byte("someone-elses-secret"), 1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid Token"}`, rec.Body.String())
}
