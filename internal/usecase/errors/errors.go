package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource conflict")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrVersionNotFound = errors.New("version not found")
)

// Entity errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrActionItemNotFound  = errors.New("action item not found")
)

// Action item errors
var (
	ErrInvalidStatus   = errors.New("invalid action item status")
	ErrInvalidPriority = errors.New("invalid action item priority")
)

// GenerationError marks a failure of the external generation capability on a
// fatal pipeline step. Best-effort steps never produce it; they degrade to
// empty results instead.
type GenerationError struct {
	Step string
	Err  error
}

// Error implements error interface
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation step %q failed: %v", e.Step, e.Err)
}

// Unwrap exposes the underlying cause
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err as a fatal generation failure
func NewGenerationError(step string, err error) *GenerationError {
	return &GenerationError{Step: step, Err: err}
}
