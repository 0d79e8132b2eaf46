package errs

import (
	"fmt"
	"net/http"
)

// NewValidationError creates a 400 Bad Request HTTPError carrying one
// message per failed field constraint. The top-level message is always
// "Validation Failed"; the per-field messages live in Details.
func NewValidationError(details []string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Success: false,
		Message: "Validation Failed",
		Details: details,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError with no
// field details, for malformed requests that never reached validation.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Success: false,
		Message: message,
	}
}

// NewMethodNotAllowedError creates a 405 HTTPError naming the rejected method.
func NewMethodNotAllowedError(method string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Success: false,
		Message: fmt.Sprintf("Method %s Not Allowed", method),
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Success: false,
		Message: message,
	}
}

// NewInternalServerError creates a 500 HTTPError.
//
// message should stay generic; internal error detail is logged by the
// global error handler, never sent to the client.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Success: false,
		Message: message,
	}
}
