package mocks

import (
	iofs "io/fs"
	"os"

	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockChmod     func(name string, mode os.FileMode) error
	MockCreate    func(filePath string) (fs.File, error)
	MockGlob      func(pattern string) ([]string, error)
	MockGlobMany  func(patterns []string) ([]string, error)
	MockLstat     func(name string) (os.FileInfo, error)
	MockMkdir     func(name string, perm os.FileMode) error
	MockMkdirAll  func(name string, perm os.FileMode) error
	MockOpen      func(name string) (fs.File, error)
	MockReadFile  func(name string) ([]byte, error)
	MockRemoveAll func(name string) error
	MockStat      func(name string) (os.FileInfo, error)
	MockSymlink   func(oldname string, newname string) error
	MockTempDir   func() string
	MockWalkDir   func(root string, fn iofs.WalkDirFunc) error
	MockWriteFile func(name string, data []byte, perm os.FileMode) error
}

// Chmod either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Chmod(name string, mode os.FileMode) error {
	if f.MockChmod != nil {
		return f.MockChmod(name, mode)
	}

	return errors.NewInputError("MockChmod was not configured")
}

// Create either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Create(filePath string) (fs.File, error) {
	if f.MockCreate != nil {
		return f.MockCreate(filePath)
	}

	return nil, errors.NewInputError("MockCreate was not configured")
}

// Glob either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	if f.MockGlob != nil {
		return f.MockGlob(pattern)
	}

	return nil, errors.NewInputError("MockGlob was not configured")
}

// GlobMany either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) GlobMany(patterns []string) ([]string, error) {
	if f.MockGlobMany != nil {
		return f.MockGlobMany(patterns)
	}

	return nil, errors.NewInputError("MockGlobMany was not configured")
}

// Lstat either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Lstat(name string) (os.FileInfo, error) {
	if f.MockLstat != nil {
		return f.MockLstat(name)
	}

	return nil, errors.NewInputError("MockLstat was not configured")
}

// Mkdir either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Mkdir(name string, perm os.FileMode) error {
	if f.MockMkdir != nil {
		return f.MockMkdir(name, perm)
	}

	return errors.NewInputError("MockMkdir was not configured")
}

// MkdirAll either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) MkdirAll(name string, perm os.FileMode) error {
	if f.MockMkdirAll != nil {
		return f.MockMkdirAll(name, perm)
	}

	return errors.NewInputError("MockMkdirAll was not configured")
}

// Open either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewInputError("MockOpen was not configured")
}

// ReadFile either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) ReadFile(name string) ([]byte, error) {
	if f.MockReadFile != nil {
		return f.MockReadFile(name)
	}

	return nil, errors.NewInputError("MockReadFile was not configured")
}

// RemoveAll either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) RemoveAll(name string) error {
	if f.MockRemoveAll != nil {
		return f.MockRemoveAll(name)
	}

	return errors.NewInputError("MockRemoveAll was not configured")
}

// Stat either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Stat(name string) (os.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.NewInputError("MockStat was not configured")
}

// Symlink either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Symlink(oldname string, newname string) error {
	if f.MockSymlink != nil {
		return f.MockSymlink(oldname, newname)
	}

	return errors.NewInputError("MockSymlink was not configured")
}

// TempDir either calls the configured mock of itself or returns the OS default.
func (f *FileSystem) TempDir() string {
	if f.MockTempDir != nil {
		return f.MockTempDir()
	}

	return os.TempDir()
}

// WalkDir either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) WalkDir(root string, fn iofs.WalkDirFunc) error {
	if f.MockWalkDir != nil {
		return f.MockWalkDir(root, fn)
	}

	return errors.NewInputError("MockWalkDir was not configured")
}

// WriteFile either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if f.MockWriteFile != nil {
		return f.MockWriteFile(name, data, perm)
	}

	return errors.NewInputError("MockWriteFile was not configured")
}
