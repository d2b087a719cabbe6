// Package predicate holds self-describing boolean tests over filesystem paths, plus the machinery that turns
// a failed test into a readable diagnostic. A predicate answers two questions: does the state of a path
// satisfy me, and how do I describe myself to a human reading a failure message.
package predicate

import (
	"github.com/rwx-research/fixturefs/internal/errors"
)

// Predicate is a boolean test against the state of a path. Built-in predicates and caller-supplied ones
// implement the same interface; the assertion engine never special-cases either.
type Predicate interface {
	// Eval reads the minimal state it needs from the path and evaluates itself against it. A false result
	// should populate Result.Detail with a value-level explanation of what was actually found.
	Eval(path string) (Result, error)

	// Describe returns the expectation in human-readable form, e.g. `content is equal to "hello"`.
	Describe() string
}

// Result is the output of a single predicate evaluation. Detail is only populated on failure.
type Result struct {
	OK     bool
	Detail string
}

// Outcome is the result of asserting a predicate against a path. A successful outcome carries no diagnostic
// data at all.
type Outcome struct {
	OK          bool
	Path        string
	Expectation string
	Detail      string
}

// Assert evaluates the predicate against the path. Failures are reported through the returned Outcome; the
// error return is reserved for system faults (I/O and encoding errors), never for a predicate that merely
// evaluated to false.
func Assert(path string, pred Predicate) (Outcome, error) {
	result, err := pred.Eval(path)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "unable to evaluate %q against %q", pred.Describe(), path)
	}

	if result.OK {
		return Outcome{OK: true}, nil
	}

	return Outcome{
		Path:        path,
		Expectation: pred.Describe(),
		Detail:      result.Detail,
	}, nil
}

// AsError converts a failed outcome into an AssertionError carrying the rendered diagnostic. Successful
// outcomes convert to nil.
func (o Outcome) AsError() error {
	if o.OK {
		return nil
	}

	return errors.NewAssertionError(o.Diagnostic(), "assertion failed for %q: expected %s", o.Path, o.Expectation)
}
