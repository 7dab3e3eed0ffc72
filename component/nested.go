package component

import (
	"fmt"

	"github.com/Lukazoid/log4rs/errors"
)

// DeserializeNested builds a component of family T from a kind-tagged map,
// the shape nested component stanzas take inside a parent's configuration
// (an appender's encoder, a compound policy's trigger and roller, an
// appender's filters). The "kind" key selects the factory and the remaining
// keys form the component's generic configuration. When the map carries no
// kind, defaultKind is used; pass "" to make the kind mandatory.
func DeserializeNested[T any](r *Registry, m map[string]any, defaultKind string) (T, error) {
	var zero T

	kind := defaultKind
	if v, ok := m["kind"]; ok {
		s, ok := v.(string)
		if !ok {
			return zero, errors.WrapDeserialization(
				fmt.Errorf("kind must be a string, got %T", v),
				"Registry", "DeserializeNested", "kind extraction")
		}
		kind = s
	}
	if kind == "" {
		_, name := familyKey[T]()
		return zero, errors.WrapDeserialization(
			fmt.Errorf("%s component is missing a kind", name),
			"Registry", "DeserializeNested", "kind extraction")
	}

	cfg := make(Raw, len(m))
	for k, v := range m {
		if k == "kind" {
			continue
		}
		cfg[k] = v
	}
	return Deserialize[T](r, kind, cfg)
}
