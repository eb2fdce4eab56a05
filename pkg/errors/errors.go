// Package errors provides structured error types for carquery.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP facade
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// Library packages (integrations, carquery) return sentinel errors wrapped
// with %w. The CLI and server translate those into an [*Error] at the edge
// with [Classify].
//
// # Error Codes
//
//   - INVALID_*: Input validation failures
//   - NOT_FOUND: Resource not found
//   - NETWORK_*, TIMEOUT, RATE_LIMITED: Transport failures
//   - MALFORMED_RESPONSE: The remote payload did not have the expected shape
//   - INTERNAL_ERROR: Everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid year: %s", arg)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidYear  Code = "INVALID_YEAR"
	ErrCodeInvalidMake  Code = "INVALID_MAKE"
	ErrCodeInvalidModel Code = "INVALID_MODEL"
	ErrCodeInvalidBody  Code = "INVALID_BODY"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeCanceled    Code = "CANCELED"

	// Response errors
	ErrCodeMalformedResponse Code = "MALFORMED_RESPONSE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Classify returns err as an *Error. Errors that already carry a code are
// returned unchanged. Deadlines and transport timeouts become TIMEOUT and
// context cancellation becomes CANCELED, ahead of the sentinel errors listed
// in known. Anything else is INTERNAL_ERROR. Classify(nil) returns nil.
func Classify(err error, known map[error]Code) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var timeout interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &timeout) && timeout.Timeout()) {
		return Wrap(ErrCodeTimeout, err, "request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(ErrCodeCanceled, err, "request canceled")
	}
	for sentinel, code := range known {
		if errors.Is(err, sentinel) {
			return &Error{Code: code, Message: err.Error(), Cause: err}
		}
	}
	return &Error{Code: ErrCodeInternal, Message: err.Error(), Cause: err}
}

// StatusClientClosedRequest is the non-standard status recorded when the
// caller went away before a response was written.
const StatusClientClosedRequest = 499

// HTTPStatus maps an error code to the status the facade server responds with.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeCanceled:
		return StatusClientClosedRequest
	case ErrCodeInvalidInput, ErrCodeInvalidYear, ErrCodeInvalidMake, ErrCodeInvalidModel, ErrCodeInvalidBody:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeNetwork, ErrCodeMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
