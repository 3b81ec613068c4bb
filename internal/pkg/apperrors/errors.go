package apperrors

import "errors"

// Common errors
var (
	// Input errors
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrValidationFailed = errors.New("validation failed")

	// Student errors
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Storage errors
	ErrStorage = errors.New("storage failure")
)

// NewInvalidArgumentError creates a new custom error for malformed or missing input
func NewInvalidArgumentError(message string) error {
	return &CustomError{
		Err:     ErrInvalidArgument,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a field failing a business rule
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Field:   field,
		Message: message,
	}
}

// NewDuplicateEmailError creates a new custom error for an email uniqueness violation
func NewDuplicateEmailError(message string) error {
	return &CustomError{
		Err:     ErrEmailAlreadyExists,
		Field:   "email",
		Message: message,
	}
}

// NewStorageError wraps an underlying persistence error with context
func NewStorageError(err error, message string) error {
	return &CustomError{
		Err:     ErrStorage,
		Message: message,
		Cause:   err,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Cause   error
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

// FieldOf returns the offending field name if the error carries one
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
