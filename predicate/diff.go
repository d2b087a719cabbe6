package predicate

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderLineDiff produces a line-oriented diff between expected and actual text, annotated with line numbers
// on each side. Deletions are lines the expectation has that the file lacks; insertions are lines the file
// has that the expectation lacks.
func renderLineDiff(expected string, actual string) string {
	dmp := diffmatchpatch.New()
	fromChars, toChars, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lineArray)

	var b strings.Builder
	b.WriteString("--- expected\n")
	b.WriteString("+++ actual\n")

	expectedLine, actualLine := 1, 1
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffEqual:
				fmt.Fprintf(&b, "  %d\t%s\n", expectedLine, line)
				expectedLine++
				actualLine++
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(&b, "- %d\t%s\n", expectedLine, line)
				expectedLine++
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(&b, "+ %d\t%s\n", actualLine, line)
				actualLine++
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderByteDiff summarizes how two byte sequences differ: their lengths and the first differing offset. A
// full diff of binary content would not help anybody.
func renderByteDiff(expected []byte, actual []byte) string {
	limit := len(expected)
	if len(actual) < limit {
		limit = len(actual)
	}

	for offset := 0; offset < limit; offset++ {
		if expected[offset] != actual[offset] {
			return fmt.Sprintf(
				"expected %d bytes, found %d bytes; first difference at offset %d: expected 0x%02x, found 0x%02x",
				len(expected), len(actual), offset, expected[offset], actual[offset],
			)
		}
	}

	return fmt.Sprintf(
		"expected %d bytes, found %d bytes; contents agree up to the shorter length",
		len(expected), len(actual),
	)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
