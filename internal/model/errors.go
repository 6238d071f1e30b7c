package model

import (
	"errors"
	"fmt"
)

// Kind classifies every failure that crosses the service boundary.
// The set is closed: transports map each kind to exactly one outcome.
type Kind string

const (
	// KindValidation means caller input violates a precondition that is
	// checkable without touching storage.
	KindValidation Kind = "validation"
	// KindNotFound means the requested id has no corresponding row.
	KindNotFound Kind = "not_found"
	// KindConflict means the mutation would violate a uniqueness or
	// referential-integrity constraint enforced by storage.
	KindConflict Kind = "conflict"
	// KindUnexpected covers every other storage failure.
	KindUnexpected Kind = "unexpected"
)

// Error is the one error type repositories and services return.
// Message is caller-facing for all kinds except KindUnexpected, whose
// cause is reserved for operator diagnostics.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidation creates a validation error for the named input field.
func NewValidation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewNotFound creates a not-found error for the named resource and id.
func NewNotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// NewConflict creates a conflict error with a caller-facing message.
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewUnexpected wraps a raw storage failure. The cause never reaches
// callers; transports must emit a generic message for this kind.
func NewUnexpected(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: "internal error", cause: cause}
}

// KindOf resolves any error to its kind. Errors carrying no *Error in
// their chain are treated as unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
