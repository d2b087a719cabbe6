package predicate

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rwx-research/fixturefs/internal/errors"
	"github.com/rwx-research/fixturefs/internal/fs"
)

// Exists is satisfied when the path refers to any existing filesystem entry.
func Exists() Predicate {
	return existsPredicate{fsys: fs.Local{}}
}

type existsPredicate struct {
	fsys fs.FileSystem
}

func (p existsPredicate) Eval(path string) (Result, error) {
	_, err := p.fsys.Stat(path)
	if err == nil {
		return Result{OK: true}, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Result{Detail: fmt.Sprintf("actual: %q was not found", path)}, nil
	}

	return Result{}, err
}

func (existsPredicate) Describe() string {
	return "path exists"
}

// Missing is satisfied when the path refers to nothing at all.
func Missing() Predicate {
	return missingPredicate{fsys: fs.Local{}}
}

type missingPredicate struct {
	fsys fs.FileSystem
}

func (p missingPredicate) Eval(path string) (Result, error) {
	info, err := p.fsys.Lstat(path)
	if err == nil {
		return Result{Detail: fmt.Sprintf("actual: found %s", describeMode(info))}, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Result{OK: true}, nil
	}

	return Result{}, err
}

func (missingPredicate) Describe() string {
	return "path is missing"
}

// IsFile is satisfied when the path refers to a regular file.
func IsFile() Predicate {
	return isFilePredicate{fsys: fs.Local{}}
}

type isFilePredicate struct {
	fsys fs.FileSystem
}

func (p isFilePredicate) Eval(path string) (Result, error) {
	info, err := p.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Detail: fmt.Sprintf("actual: %q was not found", path)}, nil
		}

		return Result{}, err
	}

	if !info.Mode().IsRegular() {
		return Result{Detail: fmt.Sprintf("actual: found %s", describeMode(info))}, nil
	}

	return Result{OK: true}, nil
}

func (isFilePredicate) Describe() string {
	return "path is a regular file"
}

// IsDir is satisfied when the path refers to a directory.
func IsDir() Predicate {
	return isDirPredicate{fsys: fs.Local{}}
}

type isDirPredicate struct {
	fsys fs.FileSystem
}

func (p isDirPredicate) Eval(path string) (Result, error) {
	info, err := p.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Detail: fmt.Sprintf("actual: %q was not found", path)}, nil
		}

		return Result{}, err
	}

	if !info.IsDir() {
		return Result{Detail: fmt.Sprintf("actual: found %s", describeMode(info))}, nil
	}

	return Result{OK: true}, nil
}

func (isDirPredicate) Describe() string {
	return "path is a directory"
}

// EqString is satisfied when the path refers to a file whose content, decoded as UTF-8 text, equals the
// expected string. Invalid UTF-8 in the file surfaces as an EncodingError so callers can fall back to
// EqBytes.
func EqString(expected string) Predicate {
	return eqStringPredicate{expected: expected, fsys: fs.Local{}}
}

type eqStringPredicate struct {
	expected string
	fsys     fs.FileSystem
}

func (p eqStringPredicate) Eval(path string) (Result, error) {
	data, result, err := readContent(p.fsys, path)
	if err != nil || result != nil {
		return orEmpty(result), err
	}

	if !utf8.Valid(data) {
		return Result{}, errors.NewEncodingError("content of %q is not valid UTF-8", path)
	}

	actual := string(data)
	if actual == p.expected {
		return Result{OK: true}, nil
	}

	return Result{Detail: renderLineDiff(p.expected, actual)}, nil
}

func (p eqStringPredicate) Describe() string {
	return fmt.Sprintf("content is equal to %q", p.expected)
}

// EqBytes is satisfied when the path refers to a file whose content equals the expected bytes exactly.
func EqBytes(expected []byte) Predicate {
	return eqBytesPredicate{expected: expected, fsys: fs.Local{}}
}

type eqBytesPredicate struct {
	expected []byte
	fsys     fs.FileSystem
}

func (p eqBytesPredicate) Eval(path string) (Result, error) {
	data, result, err := readContent(p.fsys, path)
	if err != nil || result != nil {
		return orEmpty(result), err
	}

	if bytes.Equal(data, p.expected) {
		return Result{OK: true}, nil
	}

	return Result{Detail: renderByteDiff(p.expected, data)}, nil
}

func (p eqBytesPredicate) Describe() string {
	return fmt.Sprintf("content is equal to the expected %d bytes", len(p.expected))
}

// Fn wraps a caller-supplied predicate function together with its self-description.
func Fn(description string, fn func(path string) (bool, error)) Predicate {
	return fnPredicate{description: description, fn: fn}
}

type fnPredicate struct {
	description string
	fn          func(path string) (bool, error)
}

func (p fnPredicate) Eval(path string) (Result, error) {
	ok, err := p.fn(path)
	if err != nil {
		return Result{}, err
	}

	return Result{OK: ok}, nil
}

func (p fnPredicate) Describe() string {
	return p.description
}

// readContent reads the full file content for the equality predicates. A missing file is a predicate failure
// (reported through the Result), not a system fault; any other read error propagates as the filesystem's
// IOError.
func readContent(fsys fs.FileSystem, path string) ([]byte, *Result, error) {
	data, err := fsys.ReadFile(path)
	if err == nil {
		return data, nil, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil, &Result{Detail: fmt.Sprintf("actual: %q was not found", path)}, nil
	}

	return nil, nil, err
}

func orEmpty(result *Result) Result {
	if result == nil {
		return Result{}
	}

	return *result
}

func describeMode(info os.FileInfo) string {
	switch {
	case info.IsDir():
		return "a directory"
	case info.Mode().IsRegular():
		return "a regular file"
	default:
		return fmt.Sprintf("an entry with mode %s", info.Mode())
	}
}
