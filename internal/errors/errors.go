// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// PatternError represents a malformed glob pattern. It is reported at filter-compilation time, before any
// filesystem mutation has happened, and should point at the offending pattern text.
type PatternError struct {
	E error
}

// NewPatternError returns a new PatternError
func NewPatternError(msg string, a ...any) PatternError {
	return PatternError{E: xerrors.Errorf(msg, a...)}
}

// AsPatternError checks whether the error is a pattern error
func AsPatternError(err error) (PatternError, bool) {
	var e PatternError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e PatternError) Error() string {
	return e.E.Error()
}

// IOError is any failure from the underlying filesystem: directory creation, walking, reading, or writing.
// The message should carry the operation and the path so that end-users can diagnose it.
type IOError struct {
	E error
}

// NewIOError returns a new IOError
func NewIOError(msg string, a ...any) IOError {
	return IOError{E: xerrors.Errorf(msg, a...)}
}

// AsIOError checks whether the error is an I/O error
func AsIOError(err error) (IOError, bool) {
	var e IOError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e IOError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying cause so that `Is` can see through the category, e.g. to `os.ErrNotExist`.
func (e IOError) Unwrap() error {
	return e.E
}

// EncodingError is returned when text content was requested from bytes that are not valid UTF-8. It is
// deliberately distinct from IOError so that callers can fall back to a byte-level predicate.
type EncodingError struct {
	E error
}

// NewEncodingError returns a new EncodingError
func NewEncodingError(msg string, a ...any) EncodingError {
	return EncodingError{E: xerrors.Errorf(msg, a...)}
}

// AsEncodingError checks whether the error is an encoding error
func AsEncodingError(err error) (EncodingError, bool) {
	var e EncodingError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e EncodingError) Error() string {
	return e.E.Error()
}

// InputError is an error caused by caller input, such as an assertion argument that cannot be coerced into a
// predicate.
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// AssertionError is not a system fault but an expected outcome: a predicate evaluated to false. It carries the
// rendered diagnostic so that a surrounding test-harness can print it verbatim as the failure message.
type AssertionError struct {
	E          error
	Diagnostic string
}

// NewAssertionError returns a new AssertionError
func NewAssertionError(diagnostic string, msg string, a ...any) AssertionError {
	return AssertionError{Diagnostic: diagnostic, E: xerrors.Errorf(msg, a...)}
}

// AsAssertionError checks whether the error is an assertion error.
func AsAssertionError(err error) (AssertionError, bool) {
	var e AssertionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e AssertionError) Error() string {
	return e.E.Error()
}
