package errors

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// UtilError represents a structured error with context
type UtilError struct {
	Type    ErrorType
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *UtilError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping
func (e *UtilError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a specific type
func (e *UtilError) Is(target error) bool {
	if targetErr, ok := target.(*UtilError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *UtilError) WithContext(key string, value interface{}) *UtilError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new UtilError
func New(errType ErrorType, message string) *UtilError {
	return &UtilError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *UtilError {
	return &UtilError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
		Cause:   err,
	}
}

// Newf creates a new UtilError with formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *UtilError {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrapf wraps an existing error with formatted message
func Wrapf(err error, errType ErrorType, format string, args ...interface{}) *UtilError {
	return Wrap(err, errType, fmt.Sprintf(format, args...))
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	if uErr, ok := err.(*UtilError); ok {
		return uErr.Type == errType
	}
	return false
}

// GetType returns the error type, or ErrorTypeInternal if not a UtilError
func GetType(err error) ErrorType {
	if uErr, ok := err.(*UtilError); ok {
		return uErr.Type
	}
	return ErrorTypeInternal
}

// GetContext returns context information from the error
func GetContext(err error) map[string]interface{} {
	if uErr, ok := err.(*UtilError); ok {
		return uErr.Context
	}
	return nil
}
