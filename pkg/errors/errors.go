// Package errors provides structured errors with stable machine-readable
// codes, shared by the loaders, the CLI, and the API server.
package errors

import "fmt"

// ErrorCode is a stable machine-readable error classification.
type ErrorCode string

// Error codes as constants
const (
	ErrCodeConfigLoad        ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeRuleLoad          ErrorCode = "RULES_LOAD_FAILED"
	ErrCodeInvalidRule       ErrorCode = "INVALID_RULE"
	ErrCodeInvalidPattern    ErrorCode = "INVALID_PATH_PATTERN"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeMethodNotAllowed  ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable       ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
)

// StructuredError carries a stable code alongside the human-readable message.
// Callers match on Code via errors.As rather than parsing messages.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// New creates a StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError wrapping an underlying cause.
func Wrap(code ErrorCode, message string, err error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *StructuredError) Unwrap() error { return e.Err }
