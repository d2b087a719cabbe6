package main

import (
	"github.com/rwx-research/fixturefs/internal/glob"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parsePatterns", func() {
	It("keeps pattern order and converts the '!' sigil into the exclusion flag", func() {
		patterns := parsePatterns([]string{"!**", "*.txt", "!*.log"})

		Expect(patterns).To(Equal([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "*.txt"},
			{Glob: "*.log", Exclude: true},
		}))
	})

	It("returns an empty list for no arguments", func() {
		Expect(parsePatterns(nil)).To(BeEmpty())
	})
})
