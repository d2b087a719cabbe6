// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/rwx-research/fixturefs/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Chmod changes the mode of the named file
func (l Local) Chmod(name string, mode os.FileMode) error {
	if err := os.Chmod(name, mode); err != nil {
		return errors.NewIOError("unable to change mode of %q: %s", name, err)
	}

	return nil
}

// Create creates a new file, truncating it if it already exists
func (l Local) Create(filePath string) (File, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, errors.NewIOError("unable to create %q: %s", filePath, err)
	}

	return f, nil
}

// Glob returns the names of all files matching the pattern. Unlike `filepath.Glob`, `**` is supported and
// matches across directory boundaries.
func (l Local) Glob(pattern string) ([]string, error) {
	paths, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, errors.NewPatternError("unable to expand %q: %s", pattern, err)
	}

	return paths, nil
}

// GlobMany expands multiple glob patterns at once, returning a sorted list of unique paths.
func (l Local) GlobMany(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	paths := make([]string, 0)

	for _, pattern := range patterns {
		expanded, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range expanded {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Lstat returns the FileInfo describing the named file without following symlinks. The cause stays visible
// through the wrap so callers can discriminate `os.ErrNotExist`.
func (l Local) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, errors.NewIOError("unable to stat %q: %w", name, err)
	}

	return info, nil
}

// Mkdir creates a single new directory
func (l Local) Mkdir(name string, perm os.FileMode) error {
	if err := os.Mkdir(name, perm); err != nil {
		return errors.NewIOError("unable to create directory %q: %s", name, err)
	}

	return nil
}

// MkdirAll creates a directory, including all missing parents. Pre-existing directories are not an error.
func (l Local) MkdirAll(name string, perm os.FileMode) error {
	if err := os.MkdirAll(name, perm); err != nil {
		return errors.NewIOError("unable to create directory %q: %s", name, err)
	}

	return nil
}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.NewIOError("unable to open %q: %s", name, err)
	}

	return f, nil
}

// ReadFile reads the named file and returns its contents. The cause stays visible through the wrap so
// callers can discriminate `os.ErrNotExist`.
func (l Local) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.NewIOError("unable to read %q: %w", name, err)
	}

	return data, nil
}

// RemoveAll removes a path and any children it contains
func (l Local) RemoveAll(name string) error {
	if err := os.RemoveAll(name); err != nil {
		return errors.NewIOError("unable to remove %q: %s", name, err)
	}

	return nil
}

// Stat returns the FileInfo describing the named file. The cause stays visible through the wrap so callers
// can discriminate `os.ErrNotExist`.
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, errors.NewIOError("unable to stat %q: %w", name, err)
	}

	return info, nil
}

// Symlink creates newname as a symbolic link to oldname
func (l Local) Symlink(oldname string, newname string) error {
	if err := os.Symlink(oldname, newname); err != nil {
		return errors.NewIOError("unable to symlink %q to %q: %s", newname, oldname, err)
	}

	return nil
}

// TempDir returns the default directory to use for temporary files
func (l Local) TempDir() string {
	return os.TempDir()
}

// WalkDir walks the file tree rooted at root, calling fn for each file or directory.
func (l Local) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// WriteFile writes data to the named file, creating it if necessary
func (l Local) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return errors.NewIOError("unable to write %q: %s", name, err)
	}

	return nil
}
