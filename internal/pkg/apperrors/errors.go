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

	// Authorization errors
	ErrUnauthorized     = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentAlreadyExists   = errors.New("student with this telegram ID is already registered")
	ErrReportAlreadySubmitted = errors.New("report has already been submitted")
)

// Curator errors
var (
	ErrCuratorNotFound      = errors.New("curator not found")
	ErrCuratorAlreadyExists = errors.New("curator with this telegram ID or name already exists")
)

// Directory errors
var (
	ErrFacilityNotFound                = errors.New("education facility not found")
	ErrFacilityAlreadyExists           = errors.New("education facility with this name already exists")
	ErrApprenticeshipTypeNotFound      = errors.New("apprenticeship type not found")
	ErrApprenticeshipTypeAlreadyExists = errors.New("apprenticeship type with this name already exists")
)

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context.
// It unwraps to its sentinel so errors.Is keeps working at the HTTP boundary
// while the message carries the field-level detail.
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
