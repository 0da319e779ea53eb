package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/serializer"
)

// ErrorResponse is the JSON body for every error the server returns.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HTTPStatusFromCode maps an error code to an HTTP status.
// Codes without a transport meaning (collection failures included)
// surface as internal server errors.
func HTTPStatusFromCode(code zyerrors.ErrorCode) int {
	switch code {
	case zyerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case zyerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case zyerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case zyerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case zyerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case zyerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case zyerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry.
func retryableFromCode(code zyerrors.ErrorCode) bool {
	switch code {
	case zyerrors.ErrCodeTimeout,
		zyerrors.ErrCodeUnavailable,
		zyerrors.ErrCodeRateLimitExceeded,
		zyerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, the second overwriting the
// first on key collisions. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes an error response with the request's ID attached.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code zyerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err.
// Structured errors carry their own code, status, and details; anything
// else becomes a retryable internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	if structured, ok := zyerrors.AsError(err); ok {
		merged := mergeDetails(structured.Details, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = structured.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, zyerrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
