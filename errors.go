package fixturefs

import (
	"github.com/rwx-research/fixturefs/internal/errors"
)

// The error categories live in an internal package shared across the module; the aliases below re-export
// them so callers can discriminate failures without reaching into internals.

// PatternError reports a malformed glob pattern, raised at filter-compilation time before any filesystem
// mutation.
type PatternError = errors.PatternError

// IOError reports a failure of the underlying filesystem.
type IOError = errors.IOError

// EncodingError reports that text content was requested from bytes that are not valid UTF-8.
type EncodingError = errors.EncodingError

// InputError reports a caller mistake, such as an assertion argument that is neither a predicate nor a
// literal.
type InputError = errors.InputError

// AssertionError carries the rendered diagnostic of a failed assertion.
type AssertionError = errors.AssertionError

// AsPatternError checks whether the error is a pattern error
func AsPatternError(err error) (PatternError, bool) {
	return errors.AsPatternError(err)
}

// AsIOError checks whether the error is an I/O error
func AsIOError(err error) (IOError, bool) {
	return errors.AsIOError(err)
}

// AsEncodingError checks whether the error is an encoding error
func AsEncodingError(err error) (EncodingError, bool) {
	return errors.AsEncodingError(err)
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	return errors.AsInputError(err)
}

// AsAssertionError checks whether the error is an assertion error
func AsAssertionError(err error) (AssertionError, bool) {
	return errors.AsAssertionError(err)
}
