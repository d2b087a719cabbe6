package fixturefs

import (
	"github.com/rwx-research/fixturefs/predicate"
)

// NamedTempFile is a potential file with a caller-chosen name inside its own uniquely named parent
// directory. The file itself is not created until one of the writers runs; releasing the handle disposes of
// the parent directory according to its policy.
type NamedTempFile struct {
	parent *TempDir
	child  ChildPath
}

// NewNamedFile creates the unique parent directory and returns a handle to the (not yet created) named file
// inside it.
func NewNamedFile(name string) (*NamedTempFile, error) {
	parent, err := New()
	if err != nil {
		return nil, err
	}

	return &NamedTempFile{parent: parent, child: parent.Child(name)}, nil
}

// Path returns the absolute path of the named file.
func (f *NamedTempFile) Path() string {
	return f.child.Path()
}

// Persist upgrades the parent directory to the keep policy. The operation is not reversible.
func (f *NamedTempFile) Persist() {
	f.parent.Persist()
}

// PersistIf conditionally upgrades the parent directory to the keep policy.
func (f *NamedTempFile) PersistIf(yes bool) {
	f.parent.PersistIf(yes)
}

// Touch creates the file empty.
func (f *NamedTempFile) Touch() error {
	return f.child.Touch()
}

// WriteString writes text content to the file.
func (f *NamedTempFile) WriteString(data string) error {
	return f.child.WriteString(data)
}

// WriteBytes writes binary content to the file.
func (f *NamedTempFile) WriteBytes(data []byte) error {
	return f.child.WriteBytes(data)
}

// WriteFile copies the single file at sourcePath over the named file.
func (f *NamedTempFile) WriteFile(sourcePath string) error {
	return f.child.WriteFile(sourcePath)
}

// SymlinkToFile creates the named file as a symlink to the target.
func (f *NamedTempFile) SymlinkToFile(target string) error {
	return f.child.SymlinkToFile(target)
}

// Assert evaluates an expectation against the named file. See TempDir.Assert.
func (f *NamedTempFile) Assert(expectation any) (predicate.Outcome, error) {
	return f.child.Assert(expectation)
}

// Expect evaluates an expectation against the named file and fails the test when it does not hold.
func (f *NamedTempFile) Expect(t TestingT, expectation any) {
	t.Helper()
	f.child.Expect(t, expectation)
}

// Close releases the parent directory (and with it the file) according to the disposal policy.
func (f *NamedTempFile) Close() error {
	return f.parent.Close()
}
