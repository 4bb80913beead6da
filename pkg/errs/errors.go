// Package errs defines the coded errors surfaced by the report pipeline.
// The pipeline is fail-fast: the first coded error aborts the run and is
// printed as a single formatted message by the CLI.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies a class of pipeline failure.
type Code string

const (
	// CodeMalformedTimestamp marks an order whose date_created could not
	// be parsed as an ISO-8601 datetime. Propagated rather than skipped:
	// a corrupt record usually means an upstream data problem.
	CodeMalformedTimestamp Code = "MALFORMED_TIMESTAMP"

	// CodeInvalidWeightLength marks a weight vector whose length does not
	// equal the averaging window.
	CodeInvalidWeightLength Code = "INVALID_WEIGHT_LENGTH"

	// CodeWeightsNotNormalized marks a weight vector that does not sum to
	// 1 within tolerance.
	CodeWeightsNotNormalized Code = "WEIGHTS_NOT_NORMALIZED"

	// CodeDataSource marks a failed or malformed response from the
	// commerce API.
	CodeDataSource Code = "DATA_SOURCE"
)

// Error is an application-level error carrying a code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new coded error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
