// Package replicate copies a filtered subset of a source directory tree into a destination. Replication is
// additive: destination content that is not part of the selection is never touched, and nothing is ever
// deleted.
package replicate

import (
	"io"
	iofs "io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/fs"
	"github.com/rwx-research/fixturefs/internal/glob"
)

// Replicator walks a source tree and copies the entries selected by a glob filter. All filesystem access
// goes through the injected FileSystem.
type Replicator struct {
	FileSystem fs.FileSystem
	Log        *zap.SugaredLogger
}

// Replicate copies every selected regular file from sourceDir into destDir, materializing missing destination
// parent directories on demand. It returns the number of files copied. The first unrecoverable I/O error
// aborts the walk; files copied before the error remain in place.
//
// Symlinks and special files encountered during the walk are skipped without error. Matched directories are
// created even when they end up empty.
func (r Replicator) Replicate(sourceDir string, destDir string, filter *glob.Filter) (int, error) {
	sourceDir = filepath.Clean(sourceDir)

	if err := r.FileSystem.MkdirAll(destDir, 0o755); err != nil {
		return 0, err
	}

	copied := 0
	err := r.FileSystem.WalkDir(sourceDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return errors.NewIOError("unable to walk %q: %s", path, err)
		}

		relativePath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return errors.NewIOError("unable to resolve %q relative to %q: %s", path, sourceDir, err)
		}

		if relativePath == "." {
			return nil
		}

		if !filter.Matches(relativePath) {
			// An unselected directory is still descended into; a later pattern may select files
			// underneath it.
			return nil
		}

		destPath := filepath.Join(destDir, relativePath)

		switch {
		case d.IsDir():
			return r.FileSystem.MkdirAll(destPath, 0o755)
		case d.Type().IsRegular():
			if err := r.FileSystem.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return err
			}

			if err := r.copyFile(path, destPath, d); err != nil {
				return err
			}

			copied++
			r.Log.Debugw("copied file", "source", path, "destination", destPath)
			return nil
		default:
			r.Log.Debugw("skipping special file", "source", path)
			return nil
		}
	})
	if err != nil {
		return copied, err
	}

	return copied, nil
}

// copyFile copies file bytes and permission bits. The destination is truncated if it already exists, which
// makes re-running a replication over its own output idempotent.
func (r Replicator) copyFile(sourcePath string, destPath string, d iofs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return errors.NewIOError("unable to stat %q: %s", sourcePath, err)
	}

	source, err := r.FileSystem.Open(sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := r.FileSystem.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		return errors.NewIOError("unable to copy %q to %q: %s", sourcePath, destPath, err)
	}

	if err := dest.Close(); err != nil {
		return errors.NewIOError("unable to close %q: %s", destPath, err)
	}

	return r.FileSystem.Chmod(destPath, info.Mode().Perm())
}
