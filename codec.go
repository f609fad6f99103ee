package simplify

import (
	"fmt"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SimplifyJSON decodes a JSON Schema document, runs Simplify over it, and
// re-encodes the result. Object key order in the output follows the
// insertion order the rule engine produced: keys from the original
// document keep their original order, and any key a rule newly introduces
// is appended.
func SimplifyJSON(data []byte, opts ...Option) ([]byte, error) {
	value, err := decodeSchema(data)
	if err != nil {
		return nil, err
	}
	SimplifyInPlace(&value, opts...)
	out, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSchema, err)
	}
	return out, nil
}

// SimplifyJSONIndent is SimplifyJSON with indented output, mirroring
// json.MarshalIndent's prefix/indent parameters.
func SimplifyJSONIndent(data []byte, prefix, indent string, opts ...Option) ([]byte, error) {
	value, err := decodeSchema(data)
	if err != nil {
		return nil, err
	}
	SimplifyInPlace(&value, opts...)
	out, err := json.MarshalIndent(value, prefix, indent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSchema, err)
	}
	return out, nil
}

// decodeSchema parses data into this package's value model: bool,
// float64/json.Number, string, []any, and *orderedMap for objects. Object
// key order is preserved by decoding directly into orderedmap.OrderedMap
// rather than through a plain map[string]any.
func decodeSchema(data []byte) (any, error) {
	var om orderedmap.OrderedMap[string, any]
	if err := json.Unmarshal(data, &om); err == nil {
		return convertOrderedMap(&om), nil
	}
	// Not an object: either a boolean schema or malformed input.
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSchema, err)
	}
	return root, nil
}

// convertOrderedMap walks a freshly decoded orderedmap tree and replaces
// any nested map[string]any (goccy/go-json only honors the ordered-map
// unmarshaler at the exact type it's given, not recursively) with
// *orderedMap, recursively.
func convertOrderedMap(m *orderedmap.OrderedMap[string, any]) *orderedMap {
	out := newOrderedMap()
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, convertDecodedValue(pair.Value))
	}
	return out
}

func convertDecodedValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := newOrderedMap()
		for k, vv := range val {
			out.Set(k, convertDecodedValue(vv))
		}
		return out
	case *orderedmap.OrderedMap[string, any]:
		return convertOrderedMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertDecodedValue(item)
		}
		return out
	default:
		return val
	}
}
