package common

import (
	"net/url"
	"time"
)

// APIErrorMessage is a stable, machine readable message identifier.
type APIErrorMessage string

const (
	AuthUnauthorizedMessage  APIErrorMessage = "auth.unauthorized"
	AuthForbiddenMessage     APIErrorMessage = "auth.forbidden"
	RequestParseErrorMessage APIErrorMessage = "request.parse.failed"
	NotFoundMessage          APIErrorMessage = "request.not.found"
	RequestConflictMessage   APIErrorMessage = "request.conflict"
	UpstreamErrorMessage     APIErrorMessage = "upstream.unavailable"
	InternalErrorMessage     APIErrorMessage = "error.internal"
	UnknownErrorMessage      APIErrorMessage = "error.unknown"
)

// APIError is the generic return type for any failure during endpoint
// operations.
type APIError struct {
	RequestID string          `json:"requestid"`
	Message   APIErrorMessage `json:"message"`
	Timestamp int64           `json:"timestamp"`
	Details   url.Values      `json:"details,omitempty"`
}

// NewAPIError creates a new instance of the APIError which will be returned
// to the client if an operation fails.
func NewAPIError(reqID string, message APIErrorMessage, details url.Values) *APIError {
	return &APIError{
		RequestID: reqID,
		Message:   message,
		Timestamp: time.Now().Unix(),
		Details:   details,
	}
}
