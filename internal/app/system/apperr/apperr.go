// internal/app/system/apperr/apperr.go

// Package apperr defines the typed failure taxonomy shared by the
// stores, the allocation service, and the HTTP surface.
//
// Three kinds cross the API boundary:
//   - ValidationError: caller input violates a static constraint.
//   - NotFoundError: a referenced document does not exist.
//   - ConflictError: a runtime invariant would be violated given
//     current state (occupied room at delete time, room filled by a
//     concurrent request at assign time).
//
// None are retried internally. Inconsistency between collections after
// a failed compensation is not an error type: it is an operator-facing
// log event (see the allocation package), never surfaced to end users.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input that violates a static
// constraint. The caller can always recover by correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for one field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a referenced entity id that does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NotFound builds a NotFoundError for the named entity kind.
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ConflictError reports a state-dependent invariant violation. The
// message is actionable for the caller ("room occupied", "room filled
// by a concurrent request; pick another room").
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Conflict builds a ConflictError with the given reason.
func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
