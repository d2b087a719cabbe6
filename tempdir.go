package fixturefs

import (
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/config"
	"github.com/rwx-research/fixturefs/internal/fs"
	"github.com/rwx-research/fixturefs/internal/logging"
)

// Policy controls what happens to a fixture root when it is released.
type Policy int

const (
	// PolicyDelete removes the fixture root and everything inside it. This is the default.
	PolicyDelete Policy = iota

	// PolicyKeep preserves the fixture root and logs its path, so a human can inspect it after the test
	// run.
	PolicyKeep

	// PolicyKeepWithMarker preserves the fixture root, logs its path, and drops a `.fixturefs-keep` marker
	// file inside it so preserved roots are recognizable when scanning the temp directory.
	PolicyKeepWithMarker
)

// TempDir is a uniquely named directory created for a single test. It owns its storage exclusively: the path
// refers to an existing directory from creation until release.
type TempDir struct {
	path     string
	policy   Policy
	released bool

	fsys fs.FileSystem
	log  *zap.SugaredLogger
}

// New creates a fixture root under the OS temp directory (or the FIXTUREFS_TMPDIR override) with the delete
// policy. Setting FIXTUREFS_PERSIST upgrades new fixtures to the keep policy.
func New() (*TempDir, error) {
	cfg := config.Load()

	policy := PolicyDelete
	if cfg.Persist {
		policy = PolicyKeep
	}

	return newTempDir(cfg, policy)
}

// NewWithPolicy creates a fixture root with an explicit disposal policy.
func NewWithPolicy(policy Policy) (*TempDir, error) {
	return newTempDir(config.Load(), policy)
}

// NewForTest creates a fixture root and registers its release with the test's cleanup, so that explicit
// `Close` calls and end-of-test disposal run the exact same release path. Creation failures fail the test.
func NewForTest(t TestingT) *TempDir {
	t.Helper()

	temp, err := New()
	if err != nil {
		t.Fatalf("unable to create fixture root: %s", err)
		return nil
	}

	t.Cleanup(func() {
		if err := temp.release(); err != nil {
			t.Fatalf("unable to release fixture root: %s", err)
		}
	})

	return temp
}

func newTempDir(cfg config.Config, policy Policy) (*TempDir, error) {
	fsys := fs.Local{}

	// The production logger only speaks at Info and above, so a fixture on the delete policy stays silent.
	log := logging.NewProductionLogger()
	if cfg.Debug {
		log = logging.NewDebugLogger()
	}

	root := cfg.TempRoot
	if root == "" {
		root = fsys.TempDir()
	} else if err := fsys.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	// One unique directory per fixture; parallel tests never alias the same storage.
	path := filepath.Join(root, "fixturefs-"+uuid.NewString())
	if err := fsys.Mkdir(path, 0o700); err != nil {
		return nil, err
	}

	log.Debugw("created fixture root", "path", path)

	return &TempDir{path: path, policy: policy, fsys: fsys, log: log}, nil
}

// Path returns the absolute path of the fixture root.
func (d *TempDir) Path() string {
	return d.path
}

// Child addresses a path relative to the fixture root. It performs no I/O.
func (d *TempDir) Child(segments ...string) ChildPath {
	return newChildPath(d.path, d.fsys, d.log).Child(segments...)
}

// Persist upgrades the fixture to the keep policy for debugging. The operation is not reversible.
func (d *TempDir) Persist() {
	if d.policy == PolicyDelete {
		d.policy = PolicyKeep
	}
}

// PersistIf conditionally upgrades the fixture to the keep policy. `PersistIf(false)` is a no-op.
func (d *TempDir) PersistIf(yes bool) {
	if yes {
		d.Persist()
	}
}

// Close releases the fixture root according to its disposal policy. Closing twice is a no-op.
func (d *TempDir) Close() error {
	return d.release()
}

// release is the single disposal path, shared by Close and the NewForTest cleanup.
func (d *TempDir) release() error {
	if d.released {
		return nil
	}
	d.released = true

	switch d.policy {
	case PolicyKeep:
		d.log.Infow("fixture root preserved", "path", d.path)
		return nil
	case PolicyKeepWithMarker:
		marker := filepath.Join(d.path, ".fixturefs-keep")
		if err := d.fsys.WriteFile(marker, nil, 0o644); err != nil {
			return err
		}

		d.log.Infow("fixture root preserved", "path", d.path, "marker", marker)
		return nil
	default:
		d.log.Debugw("removing fixture root", "path", d.path)
		return d.fsys.RemoveAll(d.path)
	}
}
