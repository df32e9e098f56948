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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Name resolution errors
	ErrAmbiguousName ErrorCode = "AMBIGUOUS_NAME"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
)

// CopperError represents a structured error with code and details
type CopperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CopperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CopperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CopperError) Is(target error) bool {
	var targetErr *CopperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CopperError with the given code and message
func New(code ErrorCode, message string) *CopperError {
	return &CopperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CopperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CopperError {
	return &CopperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CopperError
func Wrap(err error, code ErrorCode, message string) *CopperError {
	if err == nil {
		return nil
	}
	return &CopperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CopperError {
	if err == nil {
		return nil
	}
	return &CopperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CopperError) WithDetail(key string, value interface{}) *CopperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var copperErr *CopperError
	if errors.As(err, &copperErr) {
		return copperErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CopperError
func GetErrorCode(err error) ErrorCode {
	var copperErr *CopperError
	if errors.As(err, &copperErr) {
		return copperErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CopperError
func GetErrorDetails(err error) map[string]interface{} {
	var copperErr *CopperError
	if errors.As(err, &copperErr) {
		return copperErr.Details
	}
	return nil
}
