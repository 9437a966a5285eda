package pipeline

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure
type Kind int

const (
	// KindValidation is a missing or malformed field or a cross-field mismatch
	KindValidation Kind = iota + 1
	// KindNotFound means no entity exists for the route ID
	KindNotFound
	// KindStateConflict means the entity's stored state forbids the operation
	KindStateConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStateConflict:
		return "state_conflict"
	default:
		return "unknown"
	}
}

// Status returns the HTTP status code reported for the kind
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindStateConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the failure reported by a check. Message is shown to the client as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Validation returns a KindValidation error
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a KindNotFound error
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// StateConflict returns a KindStateConflict error
func StateConflict(format string, args ...any) *Error {
	return &Error{Kind: KindStateConflict, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a pipeline error from err
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
