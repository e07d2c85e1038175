// Package errors provides a lightweight structured error type (CheckError)
// for category-based classification in the checker and the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a CheckError for classification.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Scan errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryLinks      ErrorCategory = "links"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// CheckError is a structured error with category, severity and context.
type CheckError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CheckError
type ContextFields map[string]any

// Error implements the error interface
func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CheckError) WithContext(key string, value any) *CheckError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CheckError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CheckError {
	return &CheckError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CheckError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CheckError {
	return &CheckError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the first CheckError in err's chain, if any.
func As(err error) (*CheckError, bool) {
	var ce *CheckError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := As(err); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CheckError
func GetCategory(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return CategoryInternal
}
