// Package deps builds boolean predicates over the presence of named
// parameters. The four constructors (AllOf/AnyOf/NoneOf/OneOf) compose
// recursively: any option is either a bare parameter name or another
// predicate. The package depends only on the keyspec argument-map type, so it
// can be paired with a different per-key validator than the one the root
// package wires in.
package deps

import (
	"fmt"

	"github.com/jjatria/paramdeps/keyspec"
)

// Predicate reports whether an argument map satisfies a presence rule. It is
// pure and stateless: safe to hold, reuse across calls, and share between
// goroutines.
type Predicate func(keyspec.Args) bool

// option is the normalized form of a constructor argument, fixed at
// construction time: a bare name ref when pred is nil, a nested predicate
// otherwise.
type option struct {
	name string
	pred Predicate
}

func (o option) matches(args keyspec.Args) bool {
	if o.pred != nil {
		return o.pred(args)
	}
	// Presence alone counts; a nil value still matches.
	_, ok := args[o.name]
	return ok
}

// normalize converts raw constructor arguments into options, panicking on
// anything that is neither a name nor a predicate. Panicking here rather than
// at evaluation time means a malformed validation spec fails as soon as it is
// written down, before any call is validated with it.
func normalize(ctor string, opts []any) []option {
	out := make([]option, len(opts))
	for i, o := range opts {
		switch v := o.(type) {
		case string:
			out[i] = option{name: v}
		case Predicate:
			out[i] = option{pred: v}
		case func(keyspec.Args) bool:
			out[i] = option{pred: v}
		default:
			panic(fmt.Sprintf("paramdeps: %s takes only names and predicates", ctor))
		}
	}
	return out
}

// exactly is the counting primitive shared by AllOf, NoneOf and OneOf: the
// built predicate is true when the number of matching options equals want.
func exactly(want int, opts []option) Predicate {
	return func(args keyspec.Args) bool {
		n := 0
		for _, o := range opts {
			if o.matches(args) {
				n++
			}
		}
		return n == want
	}
}

// AllOf returns a predicate that is true when every option matches. With no
// options it is vacuously true.
func AllOf(opts ...any) Predicate {
	o := normalize("AllOf", opts)
	return exactly(len(o), o)
}

// NoneOf returns a predicate that is true when no option matches. With no
// options it is vacuously true.
func NoneOf(opts ...any) Predicate {
	return exactly(0, normalize("NoneOf", opts))
}

// OneOf returns a predicate that is true when exactly one option matches.
// With no options it is always false.
func OneOf(opts ...any) Predicate {
	return exactly(1, normalize("OneOf", opts))
}

// AnyOf returns a predicate that is true when at least one option matches.
// Options are checked left to right and evaluation stops at the first match.
// With no options it is always false.
func AnyOf(opts ...any) Predicate {
	o := normalize("AnyOf", opts)
	return func(args keyspec.Args) bool {
		for _, it := range o {
			if it.matches(args) {
				return true
			}
		}
		return false
	}
}
