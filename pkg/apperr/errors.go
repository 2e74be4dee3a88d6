// Package apperr defines the error kinds surfaced by placeholder generation.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind represents a category of failure.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindDirectory   Kind = "directory"
	KindRender      Kind = "render"
	KindPersistence Kind = "persistence"
	KindConfig      Kind = "config"
)

// Error is a categorized failure. Details carries every message of a
// multi-error report (validation).
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidationError reports rejected user input. details lists every problem found.
func NewValidationError(message string, details []string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NewDirectoryError reports an output directory that could not be created.
func NewDirectoryError(dir string, cause error) *Error {
	return &Error{
		Kind:    KindDirectory,
		Message: fmt.Sprintf("failed to create output directory: %s", dir),
		Cause:   cause,
	}
}

// NewRenderError reports a failure inside the render or encode step.
func NewRenderError(message string, cause error) *Error {
	return &Error{Kind: KindRender, Message: message, Cause: cause}
}

// NewPersistenceError reports a failure writing the output file.
func NewPersistenceError(path string, cause error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Message: fmt.Sprintf("failed to write %s", path),
		Cause:   cause,
	}
}

// NewConfigError reports unusable configuration.
func NewConfigError(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Cause: cause}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
