package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates that a proposed expense or transfer would
// draw an account below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConflict indicates that an operation conflicts with the current state
// of a resource.
var ErrConflict = errors.New("conflict")

// AppError wraps a lower-level failure with an HTTP-ish status code and a
// caller-facing message. Used mainly by the persistence layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
