package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies the class of an application error.
type ErrorCode string

const (
	ErrorCode_VALIDATION        ErrorCode = "VALIDATION"
	ErrorCode_GENERATION_FAILED ErrorCode = "GENERATION_FAILED"
	ErrorCode_NOT_FOUND         ErrorCode = "NOT_FOUND"
	ErrorCode_CONFLICT          ErrorCode = "CONFLICT"
	ErrorCode_INTERNAL          ErrorCode = "INTERNAL"
)

// String returns the string form of the error code
func (c ErrorCode) String() string {
	return string(c)
}

// AppError là custom error type cho application
type AppError struct {
	Raw       error             `json:"-"`
	HTTPCode  int               `json:"-"`
	Code      ErrorCode         `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// ErrValidation indicates missing or malformed required input. Rejected
// before any external call is made.
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// ErrGenerationFailed indicates the generation capability failed on a fatal
// pipeline step. Nothing was persisted.
func ErrGenerationFailed(step string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_GENERATION_FAILED,
		Message:  "Text generation failed",
	}.WithDetail("step", step)
}

// ErrNotFound indicates a referenced resource does not exist.
func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// ErrConflict indicates a duplicate unique-key insertion that could not be
// resolved by retrying.
func ErrConflict(resource string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_CONFLICT,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

// ErrInternal wraps an unexpected failure.
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}
