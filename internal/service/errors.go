package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across the push pipeline.
// Callers check for them with errors.Is().
var (
	// ErrModelMismatch indicates an existing note model whose field list
	// does not cover the expected schema. Anki cannot migrate a model in
	// place, so the run aborts instead of uploading notes that would land
	// in the wrong fields.
	ErrModelMismatch = errors.New("note model schema mismatch")
)

// PushError wraps a failure in the push pipeline with the operation that
// failed and a human-readable message.
type PushError struct {
	// Operation is the operation that failed (e.g., "ensure_model", "push_notes")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PushError.
func (e *PushError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PushError) Unwrap() error {
	return e.Err
}

// NewPushError returns a new PushError for the given operation.
func NewPushError(operation, message string, err error) *PushError {
	return &PushError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
