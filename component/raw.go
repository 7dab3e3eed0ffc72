package component

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Lukazoid/log4rs/errors"
)

// Raw is the generic configuration value handed to a factory: the portion
// of the parsed document belonging to one component, with the reserved keys
// (kind, filters) already stripped. It is format-agnostic; YAML, JSON, and
// TOML all normalize to the same tree.
type Raw map[string]any

// Decode converts the generic value into a factory's typed configuration
// shape. Conversion goes through a JSON round trip, the same structural
// decoding path used for the document itself, so custom scalar types
// (levels, durations, byte sizes) behave identically everywhere.
func (r Raw) Decode(into any) error {
	data, err := json.Marshal(Normalize(r))
	if err != nil {
		return errors.WrapDeserialization(err, "Raw", "Decode", "config encoding")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(into); err != nil {
		return errors.WrapDeserialization(err, "Raw", "Decode", "config conversion")
	}
	return nil
}

// Normalize rewrites a parsed value tree so every map is string-keyed.
// yaml.v3 produces map[string]any for string-keyed mappings but falls back
// to map[any]any for anything else; JSON marshaling rejects the latter.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}
