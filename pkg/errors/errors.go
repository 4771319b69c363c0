// Package errors provides the typed error taxonomy for learnR.
// All validation failures are detected eagerly at the start of the
// responsible operation and surfaced to the caller with a stack trace;
// none are silently swallowed.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// InvalidParameterError reports an input parameter that fails validation
// before any computation has started: a non-positive sample size or trial
// count, an inverted predictor range, a negative noise standard deviation,
// or a confidence level outside (0, 1).
type InvalidParameterError struct {
	Op     string
	Param  string
	Reason string
	Value  interface{}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("learnr: %s: invalid parameter %q: %s (got: %v)", e.Op, e.Param, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InvalidParameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidParameterError")
}

// NewInvalidParameterError creates an InvalidParameterError with a stack trace.
func NewInvalidParameterError(op, param, reason string, value interface{}) error {
	err := &InvalidParameterError{Op: op, Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// DegenerateSampleError reports data that cannot support a least-squares
// fit: fewer rows than the degrees of freedom require, or a predictor with
// zero variance (all x identical, slope undefined).
type DegenerateSampleError struct {
	Op     string
	Reason string
	N      int
}

func (e *DegenerateSampleError) Error() string {
	return fmt.Sprintf("learnr: %s: degenerate sample (n=%d): %s", e.Op, e.N, e.Reason)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DegenerateSampleError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("n", e.N).
		Str("type", "DegenerateSampleError")
}

// NewDegenerateSampleError creates a DegenerateSampleError with a stack trace.
func NewDegenerateSampleError(op, reason string, n int) error {
	err := &DegenerateSampleError{Op: op, Reason: reason, N: n}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors facade
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace at the point of the call.
func WithStack(err error) error {
	return errors.WithStack(err)
}
