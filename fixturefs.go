// Package fixturefs provides ephemeral, self-describing filesystem trees for use in automated tests. A test
// obtains a disposable root directory, populates it deterministically (including by selectively copying a
// filtered subset of an existing tree), and asserts that paths end up in an expected state, receiving a
// human-readable explanation when they do not.
//
//	temp := fixturefs.NewForTest(t)
//	input := temp.Child("foo.txt")
//	if err := input.WriteString("hello\n"); err != nil { ... }
//	// ... exercise the code under test ...
//	input.Expect(t, "hello\n")
//	temp.Child("bar.txt").Expect(t, predicate.Missing())
package fixturefs

// TestingT is the subset of *testing.T the fixture lifecycle needs. `GinkgoT()` satisfies it as well.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}
