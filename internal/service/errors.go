package service

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound indicates the project does not exist or belongs to
// another user. The two cases are deliberately indistinguishable.
var ErrProjectNotFound = errors.New("project not found")

// ModelResponseError indicates the model's completion could not be
// normalized into a usable result. Raw carries the completion for
// server-side logging; it must never reach API clients.
type ModelResponseError struct {
	Raw string
	Err error
}

func (e *ModelResponseError) Error() string {
	return "model returned an unusable response"
}

func (e *ModelResponseError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates a database write failed. Op names the write
// that failed so partially persisted state is diagnosable.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ValidationError indicates rejected input. Field names the offending
// field when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}
