package paramdeps

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jjatria/paramdeps/deps"
	"github.com/jjatria/paramdeps/keyspec"
)

// CodeParseError is the issue code for an argument source that could not be
// decoded into a parameter map.
const CodeParseError = "parse_error"

// ArgSource abstracts over serialized argument maps. Implementations decode
// their payload into Args once per call; decode failures surface as Issues
// with CodeParseError.
type ArgSource interface {
	Args() (keyspec.Args, error)
}

// JSONBytes wraps a byte slice holding a JSON object as an ArgSource.
func JSONBytes(b []byte) ArgSource { return jsonBytes(b) }

type jsonBytes []byte

func (b jsonBytes) Args() (keyspec.Args, error) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	if m == nil {
		return keyspec.Args{}, nil
	}
	return keyspec.Args(m), nil
}

// YAMLBytes wraps a byte slice holding a YAML mapping as an ArgSource.
func YAMLBytes(b []byte) ArgSource { return yamlBytes(b) }

type yamlBytes []byte

func (b yamlBytes) Args() (keyspec.Args, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	if node == nil {
		return keyspec.Args{}, nil
	}
	m := yamlStringMap(node)
	if m == nil {
		return nil, Issues{{Code: CodeParseError, Message: "top-level value is not a mapping"}}
	}
	return m, nil
}

// yamlStringMap normalizes a decoded YAML mapping, whose keys may not be
// strings, into Args.
func yamlStringMap(v any) keyspec.Args {
	switch m := v.(type) {
	case map[string]any:
		return keyspec.Args(m)
	case map[any]any:
		out := make(keyspec.Args, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return nil
	}
}

// ValidateFrom decodes src into an argument map and validates it the same way
// Validate does.
func ValidateFrom(ctx context.Context, src ArgSource, spec keyspec.Spec, preds ...deps.Predicate) error {
	args, err := src.Args()
	if err != nil {
		return err
	}
	return Validate(ctx, args, spec, preds...)
}
