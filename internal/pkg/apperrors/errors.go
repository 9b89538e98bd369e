package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInvalid     = errors.New("invalid session token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Scheduling errors
var (
	// ErrInvalidDate marks a class whose scheduled instant cannot be parsed.
	// Records carrying it are excluded from derived views, never fatal.
	ErrInvalidDate = errors.New("invalid or missing date")

	ErrClassNotFound   = errors.New("class not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Backend collaboration errors
var (
	// ErrFetchFailure covers failed reads against the iDrive backend.
	// The affected collection degrades to empty; the failure is surfaced
	// as a notice, not an error response.
	ErrFetchFailure = errors.New("backend fetch failed")

	// ErrMutationFailure covers failed writes (bookings, classes, users).
	// The backend's detail message is surfaced verbatim when present.
	ErrMutationFailure = errors.New("backend mutation failed")

	ErrBackendUnavailable = errors.New("backend unavailable")
)

// User management errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
)

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewMutationError wraps a backend mutation failure, keeping the backend's
// human-readable detail as the message shown to the user.
func NewMutationError(detail string) error {
	return &CustomError{
		Err:     ErrMutationFailure,
		Message: detail,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
