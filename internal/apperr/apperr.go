package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindValidation
	KindNotFound
)

const internalMessage = "Internal server error"

// Error carries a client-facing message and, for internal failures, the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return internalMessage
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps err. The client sees err's message, or the generic
// internal message when err has none.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// From returns err as an *Error, treating anything else as internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	switch From(err).Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message is the text returned to the caller in the error body.
func Message(err error) string {
	e := From(err)
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil && e.Err.Error() != "" {
		return e.Err.Error()
	}
	return internalMessage
}

// WriteJSON writes err as {"error": message} with its mapped status.
func WriteJSON(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(Status(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": Message(err)})
}
