package fixturefs

import (
	"github.com/rwx-research/fixturefs/predicate"
)

// Assert evaluates an expectation against the fixture root. The expectation is either a predicate.Predicate,
// or a literal `string` / `[]byte` which is promoted to the corresponding equality predicate. A failed
// predicate is reported through the outcome; the error return is reserved for system faults.
func (d *TempDir) Assert(expectation any) (predicate.Outcome, error) {
	return assertPath(d.path, expectation)
}

// Assert evaluates an expectation against the child path. See TempDir.Assert.
func (c ChildPath) Assert(expectation any) (predicate.Outcome, error) {
	return assertPath(c.path, expectation)
}

// Expect evaluates an expectation against the fixture root and fails the test with the rendered diagnostic
// when it does not hold.
func (d *TempDir) Expect(t TestingT, expectation any) {
	t.Helper()
	expectPath(t, d.path, expectation)
}

// Expect evaluates an expectation against the child path and fails the test with the rendered diagnostic
// when it does not hold.
func (c ChildPath) Expect(t TestingT, expectation any) {
	t.Helper()
	expectPath(t, c.path, expectation)
}

// assertPath is the one place literals are coerced into predicates, so a literal and its explicit equality
// predicate exercise identical evaluation and diagnostic machinery.
func assertPath(path string, expectation any) (predicate.Outcome, error) {
	pred, err := predicate.From(expectation)
	if err != nil {
		return predicate.Outcome{}, err
	}

	return predicate.Assert(path, pred)
}

func expectPath(t TestingT, path string, expectation any) {
	t.Helper()

	outcome, err := assertPath(path, expectation)
	if err != nil {
		t.Fatalf("%s", err)
		return
	}

	if !outcome.OK {
		t.Fatalf("%s", outcome.Diagnostic())
	}
}
