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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Document structure errors
	ErrInvalidName       ErrorCode = "INVALID_NAME"
	ErrInvalidRoot       ErrorCode = "INVALID_ROOT"
	ErrMissingDictionary ErrorCode = "MISSING_DICTIONARY"
	ErrInvalidEntry      ErrorCode = "INVALID_ENTRY"
	ErrUnsupportedNested ErrorCode = "UNSUPPORTED_NESTED_ELEMENT"
	ErrInvalidValue      ErrorCode = "INVALID_VALUE"
	ErrXMLMalformed      ErrorCode = "XML_MALFORMED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// XlateError represents a structured error with code and details.
//
// Error() renders only the human message so that it can be shown to users
// verbatim; the code is meant for callers and tests.
type XlateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XlateError) Error() string {
	switch {
	case e.Wrapped != nil && e.Message == "":
		return e.Wrapped.Error()
	case e.Wrapped != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	default:
		return e.Message
	}
}

// Unwrap implements the errors.Unwrap interface
func (e *XlateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XlateError) Is(target error) bool {
	var targetErr *XlateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XlateError with the given code and message
func New(code ErrorCode, message string) *XlateError {
	return &XlateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XlateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XlateError {
	return &XlateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a XlateError. An empty message keeps
// the wrapped error's text as the rendered message.
func Wrap(err error, code ErrorCode, message string) *XlateError {
	if err == nil {
		return nil
	}
	return &XlateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XlateError {
	if err == nil {
		return nil
	}
	return &XlateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XlateError) WithDetail(key string, value interface{}) *XlateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var xerr *XlateError
	if errors.As(err, &xerr) {
		return xerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a XlateError
func GetErrorCode(err error) ErrorCode {
	var xerr *XlateError
	if errors.As(err, &xerr) {
		return xerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a XlateError
func GetErrorDetails(err error) map[string]interface{} {
	var xerr *XlateError
	if errors.As(err, &xerr) {
		return xerr.Details
	}
	return nil
}
