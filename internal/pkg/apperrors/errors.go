package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Domain errors
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrGroupNotFound     = errors.New("study group not found")
	ErrGroupFull         = errors.New("study group is full")
	ErrListingNotFound   = errors.New("listing not found")
	ErrItemNotFound      = errors.New("lost & found item not found")
	ErrRideNotFound      = errors.New("ride not found")
	ErrRideFull          = errors.New("ride is full")
	ErrResourceMissing   = errors.New("exam resource not found")
	ErrRequestNotFound   = errors.New("connection request not found")
	ErrSelfConnection    = errors.New("cannot send a connection request to yourself")
	ErrAlreadyConnected  = errors.New("users are already connected")
	ErrWriteConflict     = errors.New("record was modified concurrently")
	ErrProfileNotFound   = errors.New("user profile not found")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
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

// CustomError wraps a sentinel with the message to surface to the client
type CustomError struct {
	Err     error
	Message string
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
