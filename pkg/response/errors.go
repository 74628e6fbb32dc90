package response

import "net/http"

// HTTPError carries the status code a delivery layer chose for a domain error.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an error rendered with the given status.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Common errors shared by handlers.
var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
