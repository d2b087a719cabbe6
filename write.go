package fixturefs

import (
	"io"
	"path/filepath"

	"github.com/rwx-research/fixturefs/internal/errors"
)

// Touch creates an empty file at the child path, creating missing parent directories first.
func (c ChildPath) Touch() error {
	if err := c.ensureParentDir(); err != nil {
		return err
	}

	file, err := c.fsys.Create(c.path)
	if err != nil {
		return err
	}

	c.log.Debugw("touched file", "path", c.path)
	return file.Close()
}

// WriteString writes text content to the child path, creating missing parent directories first.
func (c ChildPath) WriteString(data string) error {
	return c.WriteBytes([]byte(data))
}

// WriteBytes writes binary content to the child path, creating missing parent directories first.
func (c ChildPath) WriteBytes(data []byte) error {
	if err := c.ensureParentDir(); err != nil {
		return err
	}

	if err := c.fsys.WriteFile(c.path, data, 0o644); err != nil {
		return err
	}

	c.log.Debugw("wrote file", "path", c.path, "bytes", len(data))
	return nil
}

// WriteFile copies the single file at sourcePath to the child path, creating missing parent directories
// first.
func (c ChildPath) WriteFile(sourcePath string) error {
	if err := c.ensureParentDir(); err != nil {
		return err
	}

	source, err := c.fsys.Open(sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := c.fsys.Create(c.path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		return errors.NewIOError("unable to copy %q to %q: %s", sourcePath, c.path, err)
	}

	c.log.Debugw("copied file", "source", sourcePath, "path", c.path)
	return dest.Close()
}

// MkdirAll creates an empty directory (including missing parents) at the child path.
func (c ChildPath) MkdirAll() error {
	return c.fsys.MkdirAll(c.path, 0o755)
}

// SymlinkToFile creates the child path as a symlink to the target file.
func (c ChildPath) SymlinkToFile(target string) error {
	return c.symlink(target)
}

// SymlinkToDir creates the child path as a symlink to the target directory.
func (c ChildPath) SymlinkToDir(target string) error {
	return c.symlink(target)
}

// On POSIX systems file and directory symlinks are the same syscall; both entry points exist so call sites
// can state their intent.
func (c ChildPath) symlink(target string) error {
	if err := c.ensureParentDir(); err != nil {
		return err
	}

	if err := c.fsys.Symlink(target, c.path); err != nil {
		return err
	}

	c.log.Debugw("created symlink", "path", c.path, "target", target)
	return nil
}

func (c ChildPath) ensureParentDir() error {
	return c.fsys.MkdirAll(filepath.Dir(c.path), 0o755)
}
