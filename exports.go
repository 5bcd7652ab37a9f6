package paramdeps

import (
	"github.com/jjatria/paramdeps/deps"
	"github.com/jjatria/paramdeps/keyspec"
)

// Aliases and thin wrappers so callers need a single import for the common
// case: the per-key spec vocabulary plus the dependency combinators. Callers
// who want the combinators standalone (for example with a different per-key
// validator) import package deps directly instead.

type (
	Args      = keyspec.Args
	Spec      = keyspec.Spec
	Field     = keyspec.Field
	Type      = keyspec.Type
	Issue     = keyspec.Issue
	Issues    = keyspec.Issues
	Predicate = deps.Predicate
)

// Per-key type tags, re-exported from keyspec.
const (
	Scalar   = keyspec.Scalar
	ArrayRef = keyspec.ArrayRef
	HashRef  = keyspec.HashRef
	CodeRef  = keyspec.CodeRef
	Undef    = keyspec.Undef
)

// Per-key issue codes, re-exported from keyspec.
const (
	CodeInvalidType = keyspec.CodeInvalidType
	CodeRequired    = keyspec.CodeRequired
	CodeUnknownKey  = keyspec.CodeUnknownKey
	CodeBadArgList  = keyspec.CodeBadArgList
)

// AllOf is a thin wrapper over deps.AllOf: true when every option matches.
func AllOf(opts ...any) Predicate { return deps.AllOf(opts...) }

// AnyOf is a thin wrapper over deps.AnyOf: true when at least one option
// matches, checked left to right with early exit.
func AnyOf(opts ...any) Predicate { return deps.AnyOf(opts...) }

// NoneOf is a thin wrapper over deps.NoneOf: true when no option matches.
func NoneOf(opts ...any) Predicate { return deps.NoneOf(opts...) }

// OneOf is a thin wrapper over deps.OneOf: true when exactly one option
// matches.
func OneOf(opts ...any) Predicate { return deps.OneOf(opts...) }

// Pairs interprets a flattened name/value list as Args.
func Pairs(kv ...any) (Args, error) { return keyspec.Pairs(kv...) }

// AsIssues extracts Issues from an error.
func AsIssues(err error) (Issues, bool) { return keyspec.AsIssues(err) }
