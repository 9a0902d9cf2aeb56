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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule source errors
	ErrSourceRead  ErrorCode = "SOURCE_READ"
	ErrSourceParse ErrorCode = "SOURCE_PARSE"
	ErrRulesEmpty  ErrorCode = "RULES_EMPTY"

	// Quote store errors
	ErrStoreOpen  ErrorCode = "STORE_OPEN"
	ErrStoreQuery ErrorCode = "STORE_QUERY"
	ErrStoreWrite ErrorCode = "STORE_WRITE"
)

// QuotetagError represents a structured error with code and details
type QuotetagError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *QuotetagError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QuotetagError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *QuotetagError) Is(target error) bool {
	var targetErr *QuotetagError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new QuotetagError with the given code and message
func New(code ErrorCode, message string) *QuotetagError {
	return &QuotetagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new QuotetagError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *QuotetagError {
	return &QuotetagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a QuotetagError
func Wrap(err error, code ErrorCode, message string) *QuotetagError {
	if err == nil {
		return nil
	}
	return &QuotetagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *QuotetagError {
	if err == nil {
		return nil
	}
	return &QuotetagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *QuotetagError) WithDetail(key string, value interface{}) *QuotetagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var qtErr *QuotetagError
	if errors.As(err, &qtErr) {
		return qtErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a QuotetagError
func GetErrorCode(err error) ErrorCode {
	var qtErr *QuotetagError
	if errors.As(err, &qtErr) {
		return qtErr.Code
	}
	return ErrUnknown
}
