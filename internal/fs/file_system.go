package fs

import (
	iofs "io/fs"
	"os"
)

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can also be used
// for mocking.
type FileSystem interface {
	Chmod(name string, mode os.FileMode) error
	Create(filePath string) (File, error)
	Glob(pattern string) ([]string, error)
	GlobMany(patterns []string) ([]string, error)
	Lstat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(name string, perm os.FileMode) error
	Open(name string) (File, error)
	ReadFile(name string) ([]byte, error)
	RemoveAll(name string) error
	Stat(name string) (os.FileInfo, error)
	Symlink(oldname string, newname string) error
	TempDir() string
	WalkDir(root string, fn iofs.WalkDirFunc) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}
