package core

// errors.go defines the typed errors raised by the pipeline.
//
// Every failure is detected once, logged with context, and returned unchanged
// to the caller. The CLI layer maps all of them to exit code 1; the types only
// exist so logs and tests can tell the failure kinds apart:
//
//  1. ParameterError: bad options, caught at construction before any I/O
//  2. ColumnNotFoundError: target column absent, caught after load
//  3. LoadError / AnonymizeError / SaveError: step failures wrapping the cause

import (
	"fmt"
	"strings"
)

// ParameterError reports an invalid run option. It is raised by NewPipeline
// before any file is opened.
type ParameterError struct {
	Param  string // option name as the user knows it
	Value  any    // offending value (may be nil)
	Reason string // human-readable explanation
}

func (e *ParameterError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// NewParameterError builds a ParameterError for the named option.
func NewParameterError(param string, value any, reason string) *ParameterError {
	return &ParameterError{Param: param, Value: value, Reason: reason}
}

// ColumnNotFoundError reports an anonymization target column that does not
// exist in the loaded table. Raised once, after load and before sampling.
type ColumnNotFoundError struct {
	Column    string   // the missing column
	Available []string // columns the table actually has
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found in input", e.Column)
	}
	return fmt.Sprintf("column %q not found in input (available: %s)",
		e.Column, strings.Join(e.Available, ", "))
}

// LoadError wraps any failure while reading or parsing the input file,
// including encoding detection and decoding.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// AnonymizeError wraps any failure during sampling or value substitution.
type AnonymizeError struct {
	Err error
}

func (e *AnonymizeError) Error() string {
	return fmt.Sprintf("anonymizing data: %v", e.Err)
}

func (e *AnonymizeError) Unwrap() error { return e.Err }

// SaveError wraps any failure while writing the output file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
