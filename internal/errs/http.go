package errs

// HTTPError is the error type every handler and middleware returns.
//
// It implements the error interface and is serialized directly to JSON,
// producing the API's error envelope. Status is the HTTP status code to
// respond with; it is not part of the body.
type HTTPError struct {
	Status int `json:"-"`

	// Success is always false for errors. It is serialized explicitly so
	// clients can branch on a single boolean for every response.
	Success bool `json:"success"`

	// Message is the human-readable error, e.g. "Validation Failed".
	Message string `json:"error"`

	// Details holds one message per failed field constraint.
	// Only populated for validation errors.
	Details []string `json:"details,omitempty"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It matches on type only, not on status or message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Success: false,
		Message: message,
		Details: e.Details,
	}
}
