package response

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries its HTTP status and envelope error code.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose envelope code equals the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

// Common HTTP errors.
var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// statusOf returns the status and envelope code for err.
func statusOf(err error) (int, int) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, httpErr.Code
	}
	return http.StatusBadRequest, DefaultErrorCode
}
