package paramdeps

import (
	"context"

	"github.com/jjatria/paramdeps/deps"
	"github.com/jjatria/paramdeps/keyspec"
)

// CodeDependency is the issue code for a failed dependency predicate.
const CodeDependency = "dependency_failed"

// dependencyFailed is deliberately generic: it does not say which predicate
// failed or which keys were involved. Callers that need to pinpoint the rule
// should validate with one predicate per call.
func dependencyFailed() Issues {
	return Issues{{Code: CodeDependency, Message: "code-ref checking failed"}}
}

// Validate runs per-key validation and then the given presence-dependency
// predicates, in order, against the validated argument map (defaults
// applied). A per-key failure from the spec is returned unchanged. The first
// predicate that evaluates false stops evaluation and yields the generic
// dependency failure. Success is a nil return.
func Validate(ctx context.Context, args keyspec.Args, spec keyspec.Spec, preds ...deps.Predicate) error {
	checked, err := spec.Validate(ctx, args)
	if err != nil {
		return err
	}
	for _, p := range preds {
		if p == nil {
			continue
		}
		if !p(checked) {
			return dependencyFailed()
		}
	}
	return nil
}

// IsDependencyFailure reports whether err is a dependency failure raised by
// Validate, as opposed to a per-key failure from the spec.
func IsDependencyFailure(err error) bool {
	iss, ok := keyspec.AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == CodeDependency {
			return true
		}
	}
	return false
}
