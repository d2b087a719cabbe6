package fixturefs

import (
	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/fs"
	"github.com/rwx-research/fixturefs/internal/glob"
	"github.com/rwx-research/fixturefs/internal/replicate"
)

// Pattern is a single entry of a copy filter. `*` matches within a path segment, `**` across segment
// boundaries; the Exclude flag marks exclusion patterns. Order matters: the last pattern matching a path
// decides whether it is copied, so a later include can re-select paths a broad earlier exclusion dropped.
// A list opening with an include acts as a whitelist; a list opening with an exclusion only carves entries
// out, so unmatched paths are still copied.
type Pattern struct {
	Glob    string
	Exclude bool
}

// CopyFrom selectively replicates sourceDir into the fixture root and returns the number of files copied.
// An empty pattern list copies every regular file. Copying is additive: pre-existing destination content is
// never deleted.
func (d *TempDir) CopyFrom(sourceDir string, patterns []Pattern) (int, error) {
	return copyFiltered(d.fsys, d.log, sourceDir, d.path, patterns)
}

// CopyFrom selectively replicates sourceDir into the child path, creating it if necessary.
func (c ChildPath) CopyFrom(sourceDir string, patterns []Pattern) (int, error) {
	return copyFiltered(c.fsys, c.log, sourceDir, c.path, patterns)
}

func copyFiltered(fsys fs.FileSystem, log *zap.SugaredLogger, sourceDir string, dest string, patterns []Pattern) (int, error) {
	compilable := make([]glob.Pattern, len(patterns))
	for i, pattern := range patterns {
		compilable[i] = glob.Pattern{Glob: pattern.Glob, Exclude: pattern.Exclude}
	}

	filter, err := glob.Compile(compilable)
	if err != nil {
		return 0, err
	}

	replicator := replicate.Replicator{FileSystem: fsys, Log: log}
	return replicator.Replicate(sourceDir, dest, filter)
}
