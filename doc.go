// Package paramdeps layers presence-dependency validation on top of per-key
// argument validation.
//
// Overview
//   - Per-key checks: type tags, optionality and defaults via keyspec.Spec
//     (Scalar/ArrayRef/HashRef/CodeRef/Undef masks).
//   - Dependency checks: boolean predicates over key presence, built with
//     AllOf/AnyOf/NoneOf/OneOf and nestable to any depth.
//   - A stable error model via Issues (key, code, message).
//   - Argument sources: JSONBytes/YAMLBytes decode serialized maps for
//     ValidateFrom.
//
// Design policy:
//   - The root package re-exports the keyspec vocabulary and the combinators
//     so one import covers the common case.
//   - Package deps carries the combinators alone, for use with a different
//     per-key validator.
//   - Predicates never read values; presence of a key is all that counts, a
//     nil value included.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	spec := paramdeps.Spec{
//	    "alpha": {Type: paramdeps.ArrayRef, Optional: true},
//	    "bar":   {Type: paramdeps.Scalar, Optional: true},
//	    "baz":   {Type: paramdeps.Scalar, Optional: true},
//	}
//	err := paramdeps.Validate(ctx, args, spec,
//	    paramdeps.AnyOf("alpha", paramdeps.AllOf("bar", "baz")),
//	)
//
// A malformed combinator option (anything that is neither a name nor a
// predicate) panics at construction time, naming the constructor. A failed
// dependency predicate yields a single generic error: which predicate failed
// is not reported.
package paramdeps
