package glob_test

import (
	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/glob"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Compile", func() {
	It("rejects malformed patterns before any matching happens", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "*.txt"},
			{Glob: "a[", Exclude: true},
		})

		Expect(filter).To(BeNil())
		Expect(err).To(HaveOccurred())

		_, ok := errors.AsPatternError(err)
		Expect(ok).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(`"a["`))
	})

	It("compiles an empty pattern list", func() {
		filter, err := glob.Compile(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(filter.Matches("any/path/at.all")).To(BeTrue())
	})
})

var _ = Describe("Filter.Matches", func() {
	It("lets the last matching pattern win", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "*.txt"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("a/b.txt")).To(BeTrue())
		Expect(filter.Matches("a/b.bin")).To(BeFalse())
	})

	It("lets a later exclusion override an earlier include", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**"},
			{Glob: "*.log", Exclude: true},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("build/out.txt")).To(BeTrue())
		Expect(filter.Matches("build/out.log")).To(BeFalse())
	})

	It("keeps unmatched paths when the list opens with an exclusion", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "*.tmp", Exclude: true},
			{Glob: "keep.tmp"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("scratch.tmp")).To(BeFalse())
		Expect(filter.Matches("keep.tmp")).To(BeTrue())
		Expect(filter.Matches("unrelated.txt")).To(BeTrue())
	})

	It("keeps unmatched paths when the only pattern is an exclusion", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "*.bin", Exclude: true},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("a.txt")).To(BeTrue())
		Expect(filter.Matches("b.bin")).To(BeFalse())
	})

	It("treats a list opening with an include as a whitelist", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "*.bin", Exclude: false},
			{Glob: "*.log", Exclude: true},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("data.bin")).To(BeTrue())
		Expect(filter.Matches("readme.md")).To(BeFalse())
		Expect(filter.Matches("trace.log")).To(BeFalse())
	})

	It("matches slash-free patterns against the basename at any depth", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "*.txt"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("deeply/nested/dir/file.txt")).To(BeTrue())
	})

	It("matches patterns containing a separator against the full relative path", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "src/**/*.go"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("src/internal/a.go")).To(BeTrue())
		Expect(filter.Matches("vendor/internal/a.go")).To(BeFalse())
	})

	It("does not let a directory pattern select the directory's descendants", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "docs"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("docs")).To(BeTrue())
		Expect(filter.Matches("docs/guide.md")).To(BeFalse())
	})

	It("normalizes a leading ./ before matching", func() {
		filter, err := glob.Compile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "a/*.txt"},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(filter.Matches("./a/b.txt")).To(BeTrue())
	})
})
