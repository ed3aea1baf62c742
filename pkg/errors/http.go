package errors

import "fmt"

// HTTPError is an error that carries the HTTP status to respond with.
type HTTPError struct {
	Code    int
	Message string
	Fields  map[string][]string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewValidationError creates a 400 HTTPError carrying per-field messages.
func NewValidationError(message string, fields map[string][]string) *HTTPError {
	return &HTTPError{Code: 400, Message: message, Fields: fields}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
