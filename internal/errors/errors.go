package errors

import (
	"errors"
	"fmt"
)

// Error is the coded error carried across the service tier. Meta holds
// identifiers (character ID, player ID) for logging; it never feeds back
// into control flow.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on the code, so errors.Is treats two coded errors with the
// same code as equal regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && e.Code == t.Code
}

// WithMeta attaches one metadata entry and returns the error for chaining.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to an error. A wrapped coded error keeps its code and
// metadata; a plain error becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeInternal, Message: message, Cause: err}
	var coded *Error
	if errors.As(err, &coded) {
		out.Code = coded.Code
		out.Meta = coded.Meta
	}
	return out
}

// Wrapf adds formatted context to an error
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error under a new code, carrying over any metadata
// from a wrapped coded error.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: code, Message: message, Cause: err}
	var coded *Error
	if errors.As(err, &coded) && coded.Meta != nil {
		out.Meta = map[string]any{}
		for k, v := range coded.Meta {
			out.Meta[k] = v
		}
	}
	return out
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with a formatted message
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates an already exists error with a formatted message
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf creates a failed precondition error with a formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// OutOfRange creates an out of range error
func OutOfRange(message string) *Error {
	return New(CodeOutOfRange, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}
