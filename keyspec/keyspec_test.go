package keyspec_test

import (
	"context"
	"testing"

	"github.com/jjatria/paramdeps/keyspec"
)

func TestTypeMatches(t *testing.T) {
	cases := []struct {
		mask keyspec.Type
		v    any
		want bool
	}{
		{keyspec.Scalar, "x", true},
		{keyspec.Scalar, 42, true},
		{keyspec.Scalar, true, true},
		{keyspec.Scalar, []int{1}, false},
		{keyspec.ArrayRef, []int{1}, true},
		{keyspec.ArrayRef, [2]string{}, true},
		{keyspec.ArrayRef, "x", false},
		{keyspec.HashRef, map[string]any{}, true},
		{keyspec.HashRef, []int{1}, false},
		{keyspec.CodeRef, func() {}, true},
		{keyspec.CodeRef, "x", false},
		{keyspec.Undef, nil, true},
		{keyspec.Scalar, nil, false},
		{keyspec.Scalar | keyspec.Undef, nil, true},
		{keyspec.Scalar | keyspec.ArrayRef, []int{1}, true},
	}
	for _, c := range cases {
		if got := c.mask.Matches(c.v); got != c.want {
			t.Fatalf("%s.Matches(%#v): got %v, want %v", c.mask, c.v, got, c.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	if s := (keyspec.Scalar | keyspec.Undef).String(); s != "scalar|undef" {
		t.Fatalf("unexpected mask rendering %q", s)
	}
	if s := keyspec.Type(0).String(); s != "none" {
		t.Fatalf("unexpected empty mask rendering %q", s)
	}
}

func TestValidateHappyPath(t *testing.T) {
	spec := keyspec.Spec{
		"name":  {Type: keyspec.Scalar},
		"tags":  {Type: keyspec.ArrayRef, Optional: true},
		"extra": {Type: keyspec.Scalar, Optional: true, Default: "d"},
	}
	out, err := spec.Validate(context.Background(), keyspec.Args{"name": "n", "tags": []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["name"] != "n" {
		t.Fatalf("validated map lost a supplied value: %v", out)
	}
	if out["extra"] != "d" {
		t.Fatalf("default was not applied: %v", out)
	}
}

func TestValidateCollectsIssuesInKeyOrder(t *testing.T) {
	spec := keyspec.Spec{
		"must": {Type: keyspec.Scalar},
		"num":  {Type: keyspec.Scalar, Optional: true},
	}
	_, err := spec.Validate(context.Background(), keyspec.Args{
		"zz":  1,
		"num": []int{1},
	})
	iss, ok := keyspec.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(iss), iss)
	}
	// Supplied keys first in sorted order, then missing required keys.
	if iss[0].Key != "num" || iss[0].Code != keyspec.CodeInvalidType {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Key != "zz" || iss[1].Code != keyspec.CodeUnknownKey {
		t.Fatalf("unexpected second issue: %+v", iss[1])
	}
	if iss[2].Key != "must" || iss[2].Code != keyspec.CodeRequired {
		t.Fatalf("unexpected third issue: %+v", iss[2])
	}
}

func TestValidateAcceptsNilForUndefMask(t *testing.T) {
	spec := keyspec.Spec{"maybe": {Type: keyspec.Scalar | keyspec.Undef, Optional: true}}
	if _, err := spec.Validate(context.Background(), keyspec.Args{"maybe": nil}); err != nil {
		t.Fatalf("nil must satisfy a mask containing Undef: %v", err)
	}
	spec = keyspec.Spec{"maybe": {Type: keyspec.Scalar, Optional: true}}
	if _, err := spec.Validate(context.Background(), keyspec.Args{"maybe": nil}); err == nil {
		t.Fatalf("nil must not satisfy a scalar-only mask")
	}
}

func TestPairs(t *testing.T) {
	args, err := keyspec.Pairs("a", 1, "b", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["a"] != 1 {
		t.Fatalf("unexpected args: %v", args)
	}
	if _, ok := args["b"]; !ok {
		t.Fatalf("nil value must still produce a present key")
	}

	if _, err := keyspec.Pairs("a", 1, "b"); err == nil {
		t.Fatalf("odd-length list must fail")
	}
	_, err = keyspec.Pairs("a", 1, 2, 3)
	iss, ok := keyspec.AsIssues(err)
	if !ok || iss[0].Code != keyspec.CodeBadArgList {
		t.Fatalf("non-string name must yield %s, got %v", keyspec.CodeBadArgList, err)
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	iss := keyspec.Issues{
		{Key: "a", Code: keyspec.CodeInvalidType},
		{Key: "b", Code: keyspec.CodeUnknownKey},
		{Key: "c", Code: keyspec.CodeRequired},
		{Key: "d", Code: keyspec.CodeRequired},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
}
