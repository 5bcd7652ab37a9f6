// Package keyspec validates named call arguments one key at a time against a
// per-key spec: accepted value shape, optionality, and defaults. It knows
// nothing about relationships between keys; the root paramdeps package layers
// dependency checks on top of it.
package keyspec

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Type is a bitmask of accepted value shapes for a single key. Tags combine
// with OR, so Scalar|Undef accepts both a plain value and an explicit nil.
type Type uint

const (
	Scalar   Type = 1 << iota // strings, numbers, bools and other plain values
	ArrayRef                  // slices and arrays
	HashRef                   // maps
	CodeRef                   // funcs
	Undef                     // an explicit nil value
)

var typeNames = []struct {
	tag  Type
	name string
}{
	{Scalar, "scalar"},
	{ArrayRef, "arrayref"},
	{HashRef, "hashref"},
	{CodeRef, "coderef"},
	{Undef, "undef"},
}

// String renders the mask as a pipe-joined tag list, e.g. "scalar|undef".
func (t Type) String() string {
	var parts []string
	for _, tn := range typeNames {
		if t&tn.tag != 0 {
			parts = append(parts, tn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Matches reports whether the value falls under one of the mask's tags.
func (t Type) Matches(v any) bool {
	if v == nil {
		return t&Undef != 0
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return t&ArrayRef != 0
	case reflect.Map:
		return t&HashRef != 0
	case reflect.Func:
		return t&CodeRef != 0
	default:
		return t&Scalar != 0
	}
}

// Field holds the per-key rules for one parameter name.
type Field struct {
	Type     Type
	Optional bool
	// Default is filled in for an absent optional key. nil means no default.
	Default any
}

// Spec maps parameter names to their per-key rules. Keys not listed in the
// spec are rejected as unknown.
type Spec map[string]Field

// Args is the parameter map a call supplies: parameter name to value.
// Dependency checks only ever read key existence, never values.
type Args map[string]any

// Pairs interprets a flattened name/value list as Args. The list must have
// even length and string names in the name positions.
func Pairs(kv ...any) (Args, error) {
	if len(kv)%2 != 0 {
		return nil, Issues{{Code: CodeBadArgList, Message: "odd number of arguments"}}
	}
	args := make(Args, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			return nil, Issues{{
				Code:    CodeBadArgList,
				Message: fmt.Sprintf("argument name at position %d is not a string", i),
			}}
		}
		args[name] = kv[i+1]
	}
	return args, nil
}

// Validate checks every supplied key against the spec and returns the
// validated map with defaults applied. All violations are collected, in
// sorted key order, rather than stopping at the first.
func (s Spec) Validate(ctx context.Context, args Args) (Args, error) {
	var iss Issues
	out := make(Args, len(args))

	for _, k := range sortedKeys(args) {
		f, ok := s[k]
		if !ok {
			iss = AppendIssues(iss, Issue{Key: k, Code: CodeUnknownKey, Message: "key is not in the spec"})
			continue
		}
		v := args[k]
		if !f.Type.Matches(v) {
			iss = AppendIssues(iss, Issue{
				Key:     k,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("value does not satisfy %s", f.Type),
				Params:  map[string]any{"want": f.Type.String()},
			})
			continue
		}
		out[k] = v
	}

	for _, k := range sortedKeys(s) {
		if _, supplied := args[k]; supplied {
			continue
		}
		f := s[k]
		if !f.Optional {
			iss = AppendIssues(iss, Issue{Key: k, Code: CodeRequired, Message: "key is required"})
			continue
		}
		if f.Default != nil {
			out[k] = f.Default
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
