// Package errors provides structured error types for tptdiagram.
//
// Every failure surfaced to the CLI carries a machine-readable [Code] so that
// callers (and tests) can tell a definition typo apart from a rendering
// backend failure without matching on message text.
//
// # Error Codes
//
//   - INVALID_*, UNKNOWN_*, DUPLICATE_*: definition validation failures
//   - *_NOT_FOUND: missing diagrams or files
//   - RENDER_FAILED, WRITE_FAILED: rendering backend and filesystem failures
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownCategory, "unknown category %q", c)
//	if errors.Is(err, errors.ErrCodeUnknownCategory) {
//	    // Handle typo in a definition
//	}
//
//	err := errors.Wrap(errors.ErrCodeRenderFailed, cause, "render %s", name)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Definition validation errors
	ErrCodeInvalidDefinition Code = "INVALID_DEFINITION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidDirection  Code = "INVALID_DIRECTION"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeUnknownCategory   Code = "UNKNOWN_CATEGORY"
	ErrCodeDuplicateNode     Code = "DUPLICATE_NODE"
	ErrCodeUnknownNode       Code = "UNKNOWN_NODE"

	// Resource not found errors
	ErrCodeDiagramNotFound Code = "DIAGRAM_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Backend errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeWriteFailed  Code = "WRITE_FAILED"

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
// Only the outermost *Error in the chain is consulted.
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

// GetCodeOr returns the error code of err, or fallback when err carries none.
func GetCodeOr(err error, fallback Code) Code {
	if c := GetCode(err); c != "" {
		return c
	}
	return fallback
}

// UserMessage returns a user-friendly message for the error.
// Code prefixes of every *Error in the chain are dropped while the context
// added by fmt.Errorf wrappers is kept. Joined errors are listed one per line.
func UserMessage(err error) string {
	switch e := err.(type) {
	case nil:
		return ""
	case *Error:
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	case interface{ Unwrap() []error }:
		var lines []string
		for _, inner := range e.Unwrap() {
			lines = append(lines, UserMessage(inner))
		}
		return strings.Join(lines, "\n")
	case interface{ Unwrap() error }:
		inner := e.Unwrap()
		if inner == nil {
			return err.Error()
		}
		msg, innerMsg := err.Error(), inner.Error()
		if prefix, ok := strings.CutSuffix(msg, innerMsg); ok {
			return prefix + UserMessage(inner)
		}
		return msg
	}
	return err.Error()
}

// Join collects validation failures into a single error.
// It returns nil when errs is empty and the error itself when there is one.
func Join(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return errors.Join(errs...)
}
