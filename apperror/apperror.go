// Package apperror carries an HTTP status alongside a client-facing message.
package apperror

import (
	"fmt"
	"net/http"
)

// Error is a failure the client should see with Status as the response code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New formats the message and pairs it with status.
func New(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing record (404).
func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

// BadRequest reports a request that failed validation (400).
func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

// MethodNotAllowed reports a known path hit with an unsupported method (405).
func MethodNotAllowed(format string, args ...any) *Error {
	return New(http.StatusMethodNotAllowed, format, args...)
}
