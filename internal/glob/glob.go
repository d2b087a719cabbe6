// Package glob compiles an ordered list of include / exclude patterns into a path filter with ignore-file
// precedence: the last pattern that matches a path decides its classification.
package glob

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rwx-research/fixturefs/internal/errors"
)

// Pattern is a single filter entry. `*` matches within a path segment, `**` matches across segment
// boundaries. Negation is expressed through the Exclude flag, not through a `!` sigil in the pattern text.
type Pattern struct {
	Glob    string
	Exclude bool
}

// Filter is a compiled, immutable pattern list. It is compiled once and may be shared freely afterwards.
type Filter struct {
	patterns       []Pattern
	defaultInclude bool
}

// Compile validates all patterns up front and returns the filter. A single malformed pattern fails the whole
// compilation; no partial filters are ever produced.
func Compile(patterns []Pattern) (*Filter, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern.Glob) {
			return nil, errors.NewPatternError("unable to compile filter: malformed glob pattern %q", pattern.Glob)
		}
	}

	// Ignore-file default: a list that opens with an include is a whitelist, so unmatched paths are
	// filtered out. A list that opens with an exclusion (or the empty list) keeps unmatched paths; the
	// exclusions only carve entries out of an implicit match-all.
	defaultInclude := len(patterns) == 0 || patterns[0].Exclude

	return &Filter{patterns: patterns, defaultInclude: defaultInclude}, nil
}

// Matches reports whether the relative path is selected by the filter. The last matching pattern wins.
func (f *Filter) Matches(relativePath string) bool {
	relativePath = strings.TrimPrefix(filepath.ToSlash(relativePath), "./")

	selected := f.defaultInclude
	for _, pattern := range f.patterns {
		if matchOne(pattern.Glob, relativePath) {
			selected = !pattern.Exclude
		}
	}

	return selected
}

// matchOne applies a single pattern. Patterns without a path separator follow the ignore-file convention and
// match against the final path segment at any depth; patterns with a separator match the full relative path.
// The match error is discarded; Compile already rejected malformed patterns.
func matchOne(pattern string, relativePath string) bool {
	subject := relativePath
	if !strings.Contains(pattern, "/") {
		subject = path.Base(relativePath)
	}

	ok, _ := doublestar.Match(pattern, subject)
	return ok
}
