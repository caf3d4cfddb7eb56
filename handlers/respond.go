package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/testvar-app/testvar-api/apperr"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WriteJSON: encode failed: %v", err)
	}
}

// WriteError maps err to a {"error": message} body. Anything that is not
// an *apperr.Error becomes a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Storage("Internal server error")
	}
	WriteJSON(w, appErr.Status, map[string]string{"error": appErr.Message})
}
