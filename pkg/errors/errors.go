// Package errors defines the coded errors tilegrid reports at its edges.
//
// The solver itself never fails. Errors come from parsing user input,
// reading config files, talking to caches and stores, and running
// rsvg-convert. Each carries a [Code] so the CLI can pick an exit status
// and the HTTP server a response status without string matching:
//
//	err := errors.New(errors.ErrCodeInvalidAspect, "invalid aspect ratio %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidAspect) { ... }
//	os.Exit(errors.ExitCode(err))
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidAspect     Code = "INVALID_ASPECT"
	ErrCodeInvalidCount      Code = "INVALID_COUNT"
	ErrCodeInvalidMode       Code = "INVALID_MODE"
	ErrCodeInvalidOrder      Code = "INVALID_ORDER"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Invalid reports whether c is one of the INVALID_* codes, i.e. the caller
// sent something that can never succeed as given.
func (c Code) Invalid() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error carries a code, a message fit for end users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is [New] with a cause, which stays reachable through errors.Is and
// errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// as returns the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// IsInvalid reports whether err carries an INVALID_* code.
func IsInvalid(err error) bool {
	return GetCode(err).Invalid()
}

// UserMessage strips the code prefix and cause from coded errors. Other
// errors are returned verbatim.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

// ExitCode maps err to a process exit status: 0 for nil, 130 when the
// command was interrupted, 2 for invalid input and 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case IsInvalid(err):
		return 2
	default:
		return 1
	}
}
