// Package apierrors carries failure reasons from the interaction layer to the
// rest api layer, where they are converted into http responses.
package apierrors

import (
	"errors"
	"net/http"
)

type Status struct {
	Code    int
	Message string
	Details string
}

// APIStatus is implemented by errors which know the http status they should
// be reported with.
type APIStatus interface {
	Status() Status
}

type StatusError struct {
	ErrStatus Status
}

var _ error = (*StatusError)(nil)

func (e *StatusError) Error() string {
	return e.ErrStatus.Message
}

func (e *StatusError) Status() Status {
	return e.ErrStatus
}

func NewBadRequest(details string) *StatusError {
	return newStatusError(http.StatusBadRequest, "the request could not be parsed or contained invalid values", details)
}

func NewUnauthorized(details string) *StatusError {
	return newStatusError(http.StatusUnauthorized, "missing or invalid authorization", details)
}

func NewForbidden(details string) *StatusError {
	return newStatusError(http.StatusForbidden, "no permission to perform this operation", details)
}

func NewNotFound(details string) *StatusError {
	return newStatusError(http.StatusNotFound, "the requested entity could not be found", details)
}

func NewConflict(details string) *StatusError {
	return newStatusError(http.StatusConflict, "the request conflicts with the current state", details)
}

func NewBadGateway(details string) *StatusError {
	return newStatusError(http.StatusBadGateway, "upstream failure", details)
}

func NewInternalServerError(details string) *StatusError {
	return newStatusError(http.StatusInternalServerError, "an unexpected error occurred", details)
}

func newStatusError(code int, message string, details string) *StatusError {
	return &StatusError{
		ErrStatus: Status{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// AsAPIStatus returns the status carrying error, or nil if err carries none.
func AsAPIStatus(err error) APIStatus {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return nil
}

func IsBadRequestError(err error) bool {
	return reasonForError(err) == http.StatusBadRequest
}

func IsUnauthorizedError(err error) bool {
	return reasonForError(err) == http.StatusUnauthorized
}

func IsForbiddenError(err error) bool {
	return reasonForError(err) == http.StatusForbidden
}

func IsNotFoundError(err error) bool {
	return reasonForError(err) == http.StatusNotFound
}

func IsConflictError(err error) bool {
	return reasonForError(err) == http.StatusConflict
}

func IsBadGatewayError(err error) bool {
	return reasonForError(err) == http.StatusBadGateway
}

func IsInternalServerError(err error) bool {
	return reasonForError(err) == http.StatusInternalServerError
}

func reasonForError(err error) int {
	if status := AsAPIStatus(err); status != nil {
		return status.Status().Code
	}
	return 0
}
