// Package errors provides structured errors with stable machine-readable
// codes. Every failure surfaced by a collector or the HTTP API carries one
// of these codes so callers can react without parsing message strings.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class.
type ErrorCode string

// Collection error codes.
const (
	ErrCodeFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrCodeLineNotFound  ErrorCode = "LINE_NOT_FOUND"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodePartNotFound  ErrorCode = "PART_NOT_FOUND"
	ErrCodeShellNotFound ErrorCode = "SHELL_NOT_FOUND"
	ErrCodeCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrCodeStatfsFailed  ErrorCode = "STATFS_FAILED"
)

// Transport and request handling error codes.
const (
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeMethodNotAllowed  ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable       ErrorCode = "UNAVAILABLE"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

// Error is a structured error with a code, a human-readable message, an
// optional wrapped cause and optional key/value details.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a structured error without a cause.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a structured error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a structured error around a cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WrapWithContext creates a structured error around a cause and attaches
// details for transport-level error responses.
func WrapWithContext(code ErrorCode, message string, cause error, details map[string]any) *Error {
	return &Error{Code: code, Message: message, Cause: cause, Details: details}
}

// AsError extracts a structured Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first structured Error in err's chain,
// or the empty string when there is none.
func CodeOf(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}
