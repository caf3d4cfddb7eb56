package apperr

import "net/http"

// Error is a request-level failure with a status code and a message
// safe to return to the client as {"error": message}.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// BadCredentials covers both an unknown username and a wrong password.
// The two causes are deliberately indistinguishable to the client.
func BadCredentials() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Invalid username or password"}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Storage(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}
