package idrive

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failed backend call. StatusCode is zero when the request
// never produced a response (transport failure, timeout).
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap exposes the transport error, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// UserDetail returns the backend's human-readable detail message, or empty
// when the backend sent none. Surfaced verbatim to the user per contract.
func (e *APIError) UserDetail() string {
	return e.Detail
}

// IsNotFound reports whether the backend answered 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the credential was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsAPIError unwraps err into an *APIError when possible
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
