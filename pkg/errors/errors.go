package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfig ErrorCode = "CONFIG"

	// Profile errors
	ErrNotFound            ErrorCode = "NOT_FOUND"
	ErrAlreadyExists       ErrorCode = "ALREADY_EXISTS"
	ErrMissingVariable     ErrorCode = "MISSING_VARIABLE"
	ErrInputRequired       ErrorCode = "INPUT_REQUIRED"
	ErrNoProfilesAvailable ErrorCode = "NO_PROFILES"

	// Template errors
	ErrTemplateParse ErrorCode = "TEMPLATE_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Collaborator errors
	ErrEditor ErrorCode = "EDITOR"
)

// EnvprofError represents a structured error with code and details
type EnvprofError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvprofError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvprofError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnvprofError) Is(target error) bool {
	var targetErr *EnvprofError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvprofError with the given code and message
func New(code ErrorCode, message string) *EnvprofError {
	return &EnvprofError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvprofError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvprofError {
	return &EnvprofError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnvprofError
func Wrap(err error, code ErrorCode, message string) *EnvprofError {
	if err == nil {
		return nil
	}
	return &EnvprofError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvprofError {
	if err == nil {
		return nil
	}
	return &EnvprofError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnvprofError) WithDetail(key string, value interface{}) *EnvprofError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envprofErr *EnvprofError
	if errors.As(err, &envprofErr) {
		return envprofErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvprofError
func GetErrorCode(err error) ErrorCode {
	var envprofErr *EnvprofError
	if errors.As(err, &envprofErr) {
		return envprofErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnvprofError
func GetErrorDetails(err error) map[string]interface{} {
	var envprofErr *EnvprofError
	if errors.As(err, &envprofErr) {
		return envprofErr.Details
	}
	return nil
}
