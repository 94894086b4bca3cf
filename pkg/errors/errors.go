// Package errors provides structured error types for the sunburst application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library entry points
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The three codes that abort a chart run map onto the stage that detects them:
//   - MALFORMED_ROW: an input row violates the path/value shape (tree builder)
//   - MISSING_VALUE: a leaf has no value or a value is negative (aggregator)
//   - INVALID_GEOMETRY: a radius or angle precondition failed (layout, arcs)
//
// The remaining codes cover configuration, file access and unsupported
// requests.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedRow, "row %d: value %q is not a number", line, cell)
//	if errors.Is(err, errors.ErrCodeMalformedRow) {
//	    // Handle bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Chart data errors
	ErrCodeMalformedRow    Code = "MALFORMED_ROW"
	ErrCodeMissingValue    Code = "MISSING_VALUE"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// MalformedRow reports an input row that does not fit the path/value shape.
// line is the 1-based row number in the source document.
func MalformedRow(line int, format string, args ...any) *Error {
	return New(ErrCodeMalformedRow, "row %d: %s", line, fmt.Sprintf(format, args...))
}

// MissingValue reports a leaf without a value or a negative value at path.
func MissingValue(path string, format string, args ...any) *Error {
	if path == "" {
		return New(ErrCodeMissingValue, format, args...)
	}
	return New(ErrCodeMissingValue, "%s: %s", path, fmt.Sprintf(format, args...))
}

// InvalidGeometry reports a radius or angle precondition violation.
func InvalidGeometry(format string, args ...any) *Error {
	return New(ErrCodeInvalidGeometry, format, args...)
}
