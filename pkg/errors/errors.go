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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"
	ErrLicenseUnknown ErrorCode = "LICENSE_UNKNOWN"
	ErrHostInvalid    ErrorCode = "HOST_INVALID"

	// Plugin errors
	ErrPluginInvalid    ErrorCode = "PLUGIN_INVALID"
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// Collaborator errors
	ErrVCSFailed       ErrorCode = "VCS_FAILED"
	ErrWorkspaceFailed ErrorCode = "WORKSPACE_FAILED"
)

// SmithError represents a structured error with code and details
type SmithError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SmithError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SmithError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SmithError) Is(target error) bool {
	var targetErr *SmithError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SmithError with the given code and message
func New(code ErrorCode, message string) *SmithError {
	return &SmithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SmithError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SmithError {
	return &SmithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SmithError
func Wrap(err error, code ErrorCode, message string) *SmithError {
	if err == nil {
		return nil
	}
	return &SmithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SmithError {
	if err == nil {
		return nil
	}
	return &SmithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SmithError) WithDetail(key string, value interface{}) *SmithError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var smithErr *SmithError
	if errors.As(err, &smithErr) {
		return smithErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SmithError
func GetErrorCode(err error) ErrorCode {
	var smithErr *SmithError
	if errors.As(err, &smithErr) {
		return smithErr.Code
	}
	return ErrUnknown
}
