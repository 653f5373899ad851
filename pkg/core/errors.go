// Package core provides the shared error model for highlight-gallery.
package core

import (
	"fmt"
)

// ErrorCategory classifies a failure by the pipeline stage that produced it
type ErrorCategory int

const (
	ErrCategoryNone   ErrorCategory = iota // No error
	ErrCategoryConfig                      // Unreadable gallery.yaml, out-of-domain layout values
	ErrCategoryScan                        // Video tree walk failed
	ErrCategoryRender                      // Page template parse/execute failed
	ErrCategoryOutput                      // Output file could not be written
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryConfig:
		return "config"
	case ErrCategoryScan:
		return "scan"
	case ErrCategoryRender:
		return "render"
	case ErrCategoryOutput:
		return "output"
	default:
		return "unknown"
	}
}

// BuildError represents a structured error with category and details
type BuildError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: walk_failed, write_failed, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error with the given cause
func (e *BuildError) WithCause(cause error) *BuildError {
	return &BuildError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *BuildError) WithMessage(msg string) *BuildError {
	return &BuildError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *BuildError) WithDetails(details map[string]interface{}) *BuildError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &BuildError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Config errors
	ErrConfigParse = &BuildError{
		Category: ErrCategoryConfig,
		Code:     "config_parse",
		Message:  "could not parse gallery config",
	}
	ErrConfigValue = &BuildError{
		Category: ErrCategoryConfig,
		Code:     "config_value",
		Message:  "config value out of range",
	}

	// Scan errors
	ErrScanWalk = &BuildError{
		Category: ErrCategoryScan,
		Code:     "walk_failed",
		Message:  "video tree walk failed",
	}

	// Render errors
	ErrRenderTemplate = &BuildError{
		Category: ErrCategoryRender,
		Code:     "template_failed",
		Message:  "page template failed",
	}

	// Output errors
	ErrWriteOutput = &BuildError{
		Category: ErrCategoryOutput,
		Code:     "write_failed",
		Message:  "could not write output file",
	}
)

// NewBuildError creates a new BuildError with the given parameters
func NewBuildError(category ErrorCategory, code, message string) *BuildError {
	return &BuildError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}
