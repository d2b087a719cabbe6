package errors_test

import (
	"github.com/rwx-research/fixturefs/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error categories", func() {
	It("recognizes pattern errors", func() {
		err := errors.NewPatternError("bad pattern %q", "[")
		_, ok := errors.AsPatternError(err)
		Expect(ok).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(`"["`))
	})

	It("recognizes pattern errors through wrapping", func() {
		err := errors.Wrap(errors.NewPatternError("bad pattern"), "unable to compile filter")
		_, ok := errors.AsPatternError(err)
		Expect(ok).To(BeTrue())
	})

	It("keeps I/O and encoding errors distinct", func() {
		ioErr := errors.NewIOError("unable to read %q", "some/file")
		encErr := errors.NewEncodingError("%q is not valid UTF-8", "some/file")

		_, ok := errors.AsEncodingError(ioErr)
		Expect(ok).To(BeFalse())

		_, ok = errors.AsEncodingError(encErr)
		Expect(ok).To(BeTrue())

		_, ok = errors.AsIOError(encErr)
		Expect(ok).To(BeFalse())
	})

	It("carries the diagnostic on assertion errors", func() {
		err := errors.NewAssertionError("path: /tmp/x", "assertion failed")
		assertionErr, ok := errors.AsAssertionError(err)
		Expect(ok).To(BeTrue())
		Expect(assertionErr.Diagnostic).To(Equal("path: /tmp/x"))
		Expect(assertionErr.Error()).To(Equal("assertion failed"))
	})
})
