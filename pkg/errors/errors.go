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

	// Markup structure errors
	ErrUnmatchedClose ErrorCode = "UNMATCHED_CLOSE"
	ErrUnclosedTag    ErrorCode = "UNCLOSED_TAG"
	ErrNestingTooDeep ErrorCode = "NESTING_TOO_DEEP"

	// Scope resolution errors
	ErrUnknownTag          ErrorCode = "UNKNOWN_TAG"
	ErrTagMismatch         ErrorCode = "TAG_MISMATCH"
	ErrInvalidColorPairing ErrorCode = "INVALID_COLOR_PAIRING"
	ErrUnterminatedEscape  ErrorCode = "UNTERMINATED_ESCAPE"

	// Style table errors
	ErrStyleInvalid ErrorCode = "STYLE_INVALID"
	ErrStyleLoad    ErrorCode = "STYLE_LOAD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
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
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Details
	}
	return nil
}

// IsSyntaxError reports whether err was raised while parsing or resolving
// markup, as opposed to configuration or internal failures.
func IsSyntaxError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnmatchedClose, ErrUnclosedTag, ErrNestingTooDeep,
		ErrUnknownTag, ErrTagMismatch, ErrInvalidColorPairing, ErrUnterminatedEscape:
		return true
	}
	return false
}

// GetErrorMessage returns the message of the outermost Error in err's
// chain, or err.Error() if there is none
func GetErrorMessage(err error) string {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
