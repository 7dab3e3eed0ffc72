package component

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Lukazoid/log4rs/errors"
)

// BuildFunc creates a component instance from its typed configuration.
// The registry is passed back in so composite components (a compound policy
// resolving its trigger and roller) can deserialize nested kinds. Build
// functions must be safe for concurrent use; the registry invokes them
// without holding its lock.
type BuildFunc[T any, C any] func(cfg C, r *Registry) (T, error)

// erasedBuild is the uniform shape stored in the registry table. It accepts
// the generic configuration value, performs the typed conversion internally,
// and returns the built instance as any. This is what lets factories with
// incompatible config types share one table per family.
type erasedBuild func(cfg Raw, r *Registry) (any, error)

// family is the inner table for one component family: the kinds registered
// for it plus the human-readable name used in error messages.
type family struct {
	name  string
	kinds map[string]erasedBuild
}

// Registry maps (component family, kind string) pairs to factories.
// The outer dimension is the family's interface type, the inner a kind
// string scoped to that family. Build it once at startup, then share it
// read-only across configuration parses.
type Registry struct {
	mu       sync.RWMutex
	families map[reflect.Type]*family
}

// NewRegistry creates a new empty component registry
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[reflect.Type]*family),
	}
}

// UnknownKindError reports a (family, kind) pair with no registered factory.
type UnknownKindError struct {
	Family string
	Kind   string
}

// Error implements the error interface
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("no %s deserializer for kind `%s` registered", e.Family, e.Kind)
}

// Is matches the ErrUnknownKind sentinel so callers can use errors.Is
// without depending on the concrete type.
func (e *UnknownKindError) Is(target error) bool {
	return target == errors.ErrUnknownKind
}

// familyKey returns the registry key and error-message name for a family
// interface. The name is the lowercased interface name: appender.Appender
// becomes "appender", filter.Filter becomes "filter".
func familyKey[T any]() (reflect.Type, string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t, strings.ToLower(t.Name())
}

// Register adds a factory for the given kind under the family T. The typed
// build function is wrapped behind the registry's uniform erased interface;
// the adapter decodes the generic value into C before delegating.
//
// Registering a kind twice for the same family replaces the earlier entry
// (last write wins). That is the supported way to override a built-in kind,
// not an error.
func Register[T any, C any](r *Registry, kind string, build BuildFunc[T, C]) {
	key, name := familyKey[T]()

	erased := func(cfg Raw, reg *Registry) (any, error) {
		var typed C
		if err := cfg.Decode(&typed); err != nil {
			return nil, err
		}
		return build(typed, reg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fam, ok := r.families[key]
	if !ok {
		fam = &family{name: name, kinds: make(map[string]erasedBuild)}
		r.families[key] = fam
	}
	fam.kinds[kind] = erased
}

// Deserialize builds a component of family T from its kind tag and generic
// configuration. It fails when no factory is registered for the pair, when
// the generic value does not match the factory's config shape, or when the
// factory's own build logic rejects the configuration. All three surface as
// deserialization errors.
func Deserialize[T any](r *Registry, kind string, cfg Raw) (T, error) {
	var zero T
	key, name := familyKey[T]()

	r.mu.RLock()
	var build erasedBuild
	if fam, ok := r.families[key]; ok {
		build = fam.kinds[kind]
	}
	r.mu.RUnlock()

	if build == nil {
		return zero, errors.WrapDeserialization(
			&UnknownKindError{Family: name, Kind: kind},
			"Registry", "Deserialize", "kind lookup")
	}

	instance, err := build(cfg, r)
	if err != nil {
		return zero, errors.WrapDeserialization(
			fmt.Errorf("%s kind `%s`: %w", name, kind, err),
			"Registry", "Deserialize", "factory execution")
	}

	typed, ok := instance.(T)
	if !ok {
		// Unreachable through Register, which ties the erased entry to T.
		return zero, errors.WrapDeserialization(
			fmt.Errorf("%s kind `%s` built %T", name, kind, instance),
			"Registry", "Deserialize", "instance type check")
	}
	return typed, nil
}

// Kinds returns the kind strings registered for family T, for diagnostics
// and tooling. Order is not significant.
func Kinds[T any](r *Registry) []string {
	key, _ := familyKey[T]()

	r.mu.RLock()
	defer r.mu.RUnlock()

	fam, ok := r.families[key]
	if !ok {
		return nil
	}
	kinds := make([]string, 0, len(fam.kinds))
	for kind := range fam.kinds {
		kinds = append(kinds, kind)
	}
	return kinds
}
