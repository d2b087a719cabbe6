package replicate_test

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/fs"
	"github.com/rwx-research/fixturefs/internal/glob"
	"github.com/rwx-research/fixturefs/internal/mocks"
	"github.com/rwx-research/fixturefs/internal/replicate"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustCompile(patterns []glob.Pattern) *glob.Filter {
	filter, err := glob.Compile(patterns)
	Expect(err).NotTo(HaveOccurred())
	return filter
}

// fileEntry is a minimal iofs.DirEntry describing a regular file.
type fileEntry struct {
	name string
}

func (e fileEntry) Name() string               { return e.name }
func (e fileEntry) IsDir() bool                { return false }
func (e fileEntry) Type() iofs.FileMode        { return 0 }
func (e fileEntry) Info() (iofs.FileInfo, error) { return &mocks.File{}, nil }

func listFiles(root string) []string {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			paths = append(paths, rel)
		}
		return nil
	})
	Expect(err).NotTo(HaveOccurred())
	sort.Strings(paths)
	return paths
}

var _ = Describe("Replicator", func() {
	var (
		replicator replicate.Replicator
		source     string
		dest       string
	)

	write := func(relativePath string, content string) {
		path := filepath.Join(source, relativePath)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		source, err = os.MkdirTemp("", "replicate-source")
		Expect(err).NotTo(HaveOccurred())
		dest, err = os.MkdirTemp("", "replicate-dest")
		Expect(err).NotTo(HaveOccurred())

		replicator = replicate.Replicator{FileSystem: fs.Local{}, Log: zap.NewNop().Sugar()}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(source)).To(Succeed())
		Expect(os.RemoveAll(dest)).To(Succeed())
	})

	It("copies every regular file when the pattern list is empty", func() {
		write("a.txt", "a")
		write("nested/dir/file.txt", "nested")

		count, err := replicator.Replicate(source, dest, mustCompile(nil))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
		Expect(listFiles(dest)).To(Equal([]string{"a.txt", filepath.Join("nested", "dir", "file.txt")}))
	})

	It("is additive: pre-existing destination content is preserved untouched", func() {
		Expect(os.WriteFile(filepath.Join(dest, "keep.me"), []byte("precious"), 0o644)).To(Succeed())
		write("a.txt", "a")
		write("b.bin", "b")

		count, err := replicator.Replicate(source, dest, mustCompile([]glob.Pattern{
			{Glob: "*.bin", Exclude: true},
		}))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
		Expect(listFiles(dest)).To(Equal([]string{"a.txt", "keep.me"}))

		data, err := os.ReadFile(filepath.Join(dest, "keep.me"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("precious"))
	})

	It("materializes destination parent directories on demand", func() {
		write("nested/dir/file.txt", "deep")

		count, err := replicator.Replicate(source, dest, mustCompile(nil))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))

		info, err := os.Stat(filepath.Join(dest, "nested", "dir"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("is idempotent over its own output", func() {
		write("a.txt", "same bytes")
		write("nested/b.txt", "more bytes")

		first, err := replicator.Replicate(source, dest, mustCompile(nil))
		Expect(err).NotTo(HaveOccurred())
		second, err := replicator.Replicate(source, dest, mustCompile(nil))
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
		Expect(listFiles(dest)).To(Equal([]string{"a.txt", filepath.Join("nested", "b.txt")}))

		data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("same bytes"))
	})

	It("honors last-match-wins pattern precedence", func() {
		write("a/b.txt", "text")
		write("a/b.bin", "binary")

		count, err := replicator.Replicate(source, dest, mustCompile([]glob.Pattern{
			{Glob: "**", Exclude: true},
			{Glob: "*.txt"},
		}))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
		Expect(listFiles(dest)).To(Equal([]string{filepath.Join("a", "b.txt")}))
	})

	It("preserves permission bits of copied files", func() {
		write("script.sh", "#!/bin/sh\n")
		Expect(os.Chmod(filepath.Join(source, "script.sh"), 0o755)).To(Succeed())

		_, err := replicator.Replicate(source, dest, mustCompile(nil))
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(filepath.Join(dest, "script.sh"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(iofs.FileMode(0o755)))
	})

	It("skips symlinks without error", func() {
		write("real.txt", "real")
		Expect(os.Symlink(filepath.Join(source, "real.txt"), filepath.Join(source, "link.txt"))).To(Succeed())

		count, err := replicator.Replicate(source, dest, mustCompile(nil))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
		Expect(listFiles(dest)).To(Equal([]string{"real.txt"}))
	})

	It("routes every read and write through the injected file-system", func() {
		source := &mocks.File{Reader: strings.NewReader("payload")}
		dest := &mocks.File{Builder: &strings.Builder{}}

		fsys := &mocks.FileSystem{
			MockMkdirAll: func(name string, perm os.FileMode) error { return nil },
			MockWalkDir: func(root string, fn iofs.WalkDirFunc) error {
				return fn(filepath.Join(root, "payload.txt"), fileEntry{name: "payload.txt"}, nil)
			},
			MockOpen:   func(name string) (fs.File, error) { return source, nil },
			MockCreate: func(name string) (fs.File, error) { return dest, nil },
			MockChmod:  func(name string, mode os.FileMode) error { return nil },
		}
		replicator := replicate.Replicator{FileSystem: fsys, Log: zap.NewNop().Sugar()}

		count, err := replicator.Replicate("/virtual/source", "/virtual/dest", mustCompile(nil))

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
		Expect(dest.Builder.String()).To(Equal("payload"))
	})

	It("surfaces the first walk error as an IOError and aborts", func() {
		failing := &mocks.FileSystem{
			MockMkdirAll: func(name string, perm os.FileMode) error { return nil },
			MockWalkDir: func(root string, fn iofs.WalkDirFunc) error {
				return fn(filepath.Join(root, "vanished"), nil, os.ErrNotExist)
			},
		}
		replicator := replicate.Replicator{FileSystem: failing, Log: zap.NewNop().Sugar()}

		count, err := replicator.Replicate(source, dest, mustCompile(nil))

		Expect(count).To(Equal(0))
		Expect(err).To(HaveOccurred())

		_, ok := errors.AsIOError(err)
		Expect(ok).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("vanished"))
	})
})
