package main

import (
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/fs"
	"github.com/rwx-research/fixturefs/internal/glob"
	"github.com/rwx-research/fixturefs/internal/replicate"
)

var (
	patternArgs []string

	copyCmd = &cobra.Command{
		Use:   "copy [flags] <source>... <destination>",
		Short: "Selectively replicate one or more source trees into a destination directory",
		Long: "Copy walks each source directory and replicates the files selected by the pattern list into\n" +
			"the destination. Patterns follow ignore-file precedence: the last matching pattern wins, and a\n" +
			"leading '!' marks an exclusion. Copying is additive; pre-existing destination files are left\n" +
			"untouched.",
		Args: cobra.MinimumNArgs(2),
		RunE: runCopy,
	}
)

func init() {
	copyCmd.Flags().StringArrayVar(&patternArgs, "pattern", nil,
		"glob pattern selecting files to copy; prefix with '!' to exclude (repeatable, order matters)")
}

func runCopy(cmd *cobra.Command, args []string) error {
	log := newLogger()
	fsys := fs.Local{}

	dest := args[len(args)-1]
	sources, err := fsys.GlobMany(args[:len(args)-1])
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.NewInputError("no source directories match %q", strings.Join(args[:len(args)-1], ", "))
	}

	filter, err := glob.Compile(parsePatterns(patternArgs))
	if err != nil {
		return err
	}

	replicator := replicate.Replicator{FileSystem: fsys, Log: log}

	var copied int64
	group := new(errgroup.Group)
	for _, source := range sources {
		source := source
		group.Go(func() error {
			count, err := replicator.Replicate(source, dest, filter)
			atomic.AddInt64(&copied, int64(count))
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	log.Infow("replication finished", "sources", len(sources), "files", atomic.LoadInt64(&copied), "destination", dest)
	return nil
}

// parsePatterns converts the '!'-sigil CLI convention into the library's explicit exclusion flag.
func parsePatterns(args []string) []glob.Pattern {
	patterns := make([]glob.Pattern, len(args))
	for i, arg := range args {
		if strings.HasPrefix(arg, "!") {
			patterns[i] = glob.Pattern{Glob: strings.TrimPrefix(arg, "!"), Exclude: true}
			continue
		}

		patterns[i] = glob.Pattern{Glob: arg}
	}

	return patterns
}
