package predicate

import (
	"github.com/rwx-research/fixturefs/internal/errors"
)

// From is the single coercion site from caller-supplied assertion arguments to predicates. A literal string
// becomes a string-equality predicate, a byte slice becomes a byte-equality predicate, and a Predicate passes
// through unchanged. The coercion is total and lossless; anything else is an InputError.
//
// Keeping this in one function means a literal and its explicit equality predicate exercise exactly the same
// evaluation and diagnostic machinery.
func From(value any) (Predicate, error) {
	switch v := value.(type) {
	case Predicate:
		return v, nil
	case string:
		return EqString(v), nil
	case []byte:
		return EqBytes(v), nil
	default:
		return nil, errors.NewInputError("unable to interpret a value of type %T as a path predicate", value)
	}
}
