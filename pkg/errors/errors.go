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

	// Relocation errors
	ErrContextMissing  ErrorCode = "CONTEXT_MISSING"
	ErrAddressShape    ErrorCode = "ADDRESS_SHAPE"
	ErrUnsupported     ErrorCode = "UNSUPPORTED"
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Document errors
	ErrDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrDocumentInvalid  ErrorCode = "DOCUMENT_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DashkitError represents a structured error with code and details
type DashkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DashkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DashkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DashkitError) Is(target error) bool {
	var targetErr *DashkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DashkitError with the given code and message
func New(code ErrorCode, message string) *DashkitError {
	return &DashkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DashkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DashkitError {
	return &DashkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DashkitError
func Wrap(err error, code ErrorCode, message string) *DashkitError {
	if err == nil {
		return nil
	}
	return &DashkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DashkitError {
	if err == nil {
		return nil
	}
	return &DashkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DashkitError) WithDetail(key string, value interface{}) *DashkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dkErr *DashkitError
	if errors.As(err, &dkErr) {
		return dkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DashkitError
func GetErrorCode(err error) ErrorCode {
	var dkErr *DashkitError
	if errors.As(err, &dkErr) {
		return dkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DashkitError
func GetErrorDetails(err error) map[string]interface{} {
	var dkErr *DashkitError
	if errors.As(err, &dkErr) {
		return dkErr.Details
	}
	return nil
}
