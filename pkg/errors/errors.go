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

	// Selection errors
	ErrInvalidPath    ErrorCode = "INVALID_PATH"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"
	ErrRuleNotFound   ErrorCode = "RULE_NOT_FOUND"

	// Ruleset errors
	ErrRulesetNotFound  ErrorCode = "RULESET_NOT_FOUND"
	ErrRulesetConfig    ErrorCode = "RULESET_CONFIG"
	ErrFrontmatterParse ErrorCode = "FRONTMATTER_PARSE"
	ErrFileAccess       ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// RulebookError represents a structured error with code and details
type RulebookError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RulebookError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RulebookError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RulebookError) Is(target error) bool {
	var targetErr *RulebookError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RulebookError with the given code and message
func New(code ErrorCode, message string) *RulebookError {
	return &RulebookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RulebookError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RulebookError {
	return &RulebookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RulebookError
func Wrap(err error, code ErrorCode, message string) *RulebookError {
	if err == nil {
		return nil
	}
	return &RulebookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RulebookError {
	if err == nil {
		return nil
	}
	return &RulebookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RulebookError) WithDetail(key string, value interface{}) *RulebookError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rbErr *RulebookError
	if errors.As(err, &rbErr) {
		return rbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RulebookError
func GetErrorCode(err error) ErrorCode {
	var rbErr *RulebookError
	if errors.As(err, &rbErr) {
		return rbErr.Code
	}
	return ErrUnknown
}
