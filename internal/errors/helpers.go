package errors

import (
	"errors"
)

// As is errors.As specialized to our Error type.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether err matches target, following wrap chains.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code from an error chain. nil maps to OK and a
// plain (non-coded) error maps to Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of a coded error, or nil.
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the coded error's message without its code prefix,
// falling back to err.Error() for plain errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

func hasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound reports whether the error carries the NotFound code
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInvalidArgument reports whether the error carries the InvalidArgument code
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

// IsAlreadyExists reports whether the error carries the AlreadyExists code
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsFailedPrecondition reports whether the error carries the FailedPrecondition code
func IsFailedPrecondition(err error) bool {
	return hasCode(err, CodeFailedPrecondition)
}

// IsOutOfRange reports whether the error carries the OutOfRange code
func IsOutOfRange(err error) bool {
	return hasCode(err, CodeOutOfRange)
}

// IsInternal reports whether the error carries the Internal code
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// IsUnavailable reports whether the error carries the Unavailable code
func IsUnavailable(err error) bool {
	return hasCode(err, CodeUnavailable)
}
