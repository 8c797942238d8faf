// Package apierror provides the standardized error taxonomy for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies an API error into one of the documented failure classes.
type Kind int

const (
	// KindInternal is the catch-all for unexpected failures; clients only ever
	// see an opaque message for it.
	KindInternal Kind = iota
	// KindUnauthorized covers missing sessions and insufficient roles.
	KindUnauthorized
	// KindValidation covers missing/invalid input and illegal state transitions.
	KindValidation
	// KindConflict covers uniqueness and referential-integrity violations.
	// The API contract maps it to 400, not 409.
	KindConflict
	// KindNotFound covers ids that do not resolve to a row.
	KindNotFound
)

// Error is the canonical application error carried from services to handlers.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }

// Response is the JSON envelope for all 4xx/5xx responses.
type Response struct {
	Error string `json:"error"`
}

// New builds the error envelope.
func New(msg string) Response { return Response{Error: msg} }

// Status maps an error to its HTTP status code. Anything that is not an
// *Error is an internal fault.
func Status(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}
