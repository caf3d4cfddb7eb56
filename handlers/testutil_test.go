package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
	"github.com/testvar-app/testvar-api/handlers"
	"github.com/testvar-app/testvar-api/middleware"
	"github.com/testvar-app/testvar-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-signing-secret"

// newTestHandler opens a uniquely named in-memory database so tests
// never share state, and migrates the schema.
func newTestHandler(t *testing.T) *handlers.DBHandler {
	t.Helper()

	name, err := gonanoid.New()
	require.NoError(t, err)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Set{}, &models.Flashcard{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return &handlers.DBHandler{DB: db, Secret: []byte(testSecret)}
}

// newTestRouter wires every route the way main does.
func newTestRouter(t *testing.T) (*handlers.DBHandler, *http.ServeMux) {
	t.Helper()

	h := newTestHandler(t)
	requireAuth := middleware.RequireAuth(h.Secret)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/signup", h.Signup)
	mux.HandleFunc("POST /users/login", h.Login)
	mux.HandleFunc("GET /users/me", requireAuth(h.Me))
	mux.HandleFunc("GET /sets", h.ListSets)
	mux.HandleFunc("POST /sets", h.CreateSet)
	mux.HandleFunc("DELETE /sets/{id}", h.DeleteSet)
	mux.HandleFunc("GET /flashcards", h.ListFlashcards)
	mux.HandleFunc("POST /flashcards", h.CreateFlashcard)
	mux.HandleFunc("DELETE /flashcards/{id}", h.DeleteFlashcard)

	return h, mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}
