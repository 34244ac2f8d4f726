package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
	"github.com/guardrail-dev/guardrail/pkg/serializer"
)

// ErrorResponse represents error responses returned by the API
type ErrorResponse struct {
	Code      gerrors.ErrorCode      `json:"code" yaml:"code"`
	Message   string                 `json:"message" yaml:"message"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string                 `json:"requestId" yaml:"requestId"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Retryable bool                   `json:"retryable" yaml:"retryable"`
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code gerrors.ErrorCode, message string, retryable bool, details map[string]interface{}) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from a structured
// error, falling back to an internal error for plain errors.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	message string, details map[string]interface{}) {

	code := gerrors.ErrCodeInternal
	var se *gerrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
	}
	if details == nil {
		details = map[string]interface{}{}
	}
	details["error"] = err.Error()

	WriteError(w, r, HTTPStatusFromCode(code), code, message, RetryableFromCode(code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code gerrors.ErrorCode) int {
	switch code {
	case gerrors.ErrCodeInvalidRequest, gerrors.ErrCodeInvalidRule,
		gerrors.ErrCodeInvalidPattern, gerrors.ErrCodeRuleLoad, gerrors.ErrCodeConfigLoad:
		return http.StatusBadRequest
	case gerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case gerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case gerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case gerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RetryableFromCode reports whether a request failing with this code may
// succeed on retry without modification.
func RetryableFromCode(code gerrors.ErrorCode) bool {
	switch code {
	case gerrors.ErrCodeRateLimitExceeded, gerrors.ErrCodeUnavailable,
		gerrors.ErrCodeTimeout, gerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}
