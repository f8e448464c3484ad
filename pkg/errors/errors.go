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

	// Rule errors
	ErrCompile         ErrorCode = "COMPILE"
	ErrDuplicateName   ErrorCode = "DUPLICATE_NAME"
	ErrFieldValidation ErrorCode = "FIELD_INVALID"
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule file errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFormat     ErrorCode = "FORMAT"
)

// FilterError represents a structured error with code and details
type FilterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilterError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FilterError carrying the same code
func (e *FilterError) Is(target error) bool {
	var targetErr *FilterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilterError with the given code and message
func New(code ErrorCode, message string) *FilterError {
	return &FilterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilterError {
	return &FilterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilterError
func Wrap(err error, code ErrorCode, message string) *FilterError {
	if err == nil {
		return nil
	}
	return &FilterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilterError {
	if err == nil {
		return nil
	}
	return &FilterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilterError) WithDetail(key string, value interface{}) *FilterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FilterError) WithDetails(details map[string]interface{}) *FilterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		return filterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilterError
func GetErrorCode(err error) ErrorCode {
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		return filterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilterError
func GetErrorDetails(err error) map[string]interface{} {
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		return filterErr.Details
	}
	return nil
}

// Message returns the outermost message of a FilterError without the code
// prefix, falling back to err.Error() for other errors.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var filterErr *FilterError
	if errors.As(err, &filterErr) {
		if filterErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", filterErr.Message, filterErr.Wrapped)
		}
		return filterErr.Message
	}
	return err.Error()
}
