package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for backend operations
var (
	// ErrUnauthorized indicates the backend rejected the session token.
	// The session layer clears persisted credentials when it sees this.
	ErrUnauthorized = errors.New("session token is invalid or expired")

	// ErrNotFound indicates the requested entity does not exist
	ErrNotFound = errors.New("entity not found")
)

// TransportError indicates the backend was unreachable or answered with
// a server-side failure. The cache is left untouched and the caller may
// retry the operation.
type TransportError struct {
	Op  string // operation being attempted, e.g. "create unit"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries every field violation found in a payload.
// It is produced before any network call is made, or when the backend
// rejects a payload shape.
type ValidationError struct {
	Entity string
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid %s payload", e.Entity)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Entity, strings.Join(parts, "; "))
}

// violations accumulates field errors during payload validation.
type violations struct {
	entity string
	fields []FieldViolation
}

func (v *violations) add(field, message string) {
	v.fields = append(v.fields, FieldViolation{Field: field, Message: message})
}

// err returns nil when no violations were recorded.
func (v *violations) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: v.entity, Fields: v.fields}
}
