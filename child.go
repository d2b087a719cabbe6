package fixturefs

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/fs"
)

// ChildPath is a named location relative to a fixture root (or another child path). It is a pure relation:
// the value exists independently of whether the underlying filesystem entry does, and resolving it performs
// no I/O. Multiple ChildPath values may address the same location.
type ChildPath struct {
	path string

	fsys fs.FileSystem
	log  *zap.SugaredLogger
}

func newChildPath(path string, fsys fs.FileSystem, log *zap.SugaredLogger) ChildPath {
	return ChildPath{path: path, fsys: fsys, log: log}
}

// Path returns the absolute path this child resolves to.
func (c ChildPath) Path() string {
	return c.path
}

// Child addresses a path relative to this one. It performs no I/O and never fails.
func (c ChildPath) Child(segments ...string) ChildPath {
	return newChildPath(filepath.Join(append([]string{c.path}, segments...)...), c.fsys, c.log)
}
