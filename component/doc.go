// Package component provides the pluggable deserialization infrastructure
// for configuration-driven logging pipelines: a registry mapping component
// families and kind strings to factories, and the generic configuration
// value those factories decode.
//
// # Overview
//
// A configuration document declares components only by a string "kind"
// ("console", "threshold", "fixed_window"). The Registry turns those tags
// back into strongly typed objects. It is indexed in two dimensions: by
// component family (the Go interface a factory produces, e.g.
// append.Appender) and by kind string within that family. Kind strings are
// scoped per family, so an appender kind and a filter kind may share a name.
//
// Factories with mutually incompatible configuration types share one table
// through type erasure: Register wraps each typed build function in an
// adapter that decodes the generic Raw value into the factory's own config
// type before delegating, and Deserialize re-enters typed code through its
// type parameter.
//
// # Component Registration Pattern
//
// Registration is EXPLICIT rather than init() self-registration. This provides:
//   - Testability: isolated registries per test
//   - Explicitness: the host program controls which kinds exist
//   - No side effects: no global state modification during package initialization
//
// Registration Flow:
//
//  1. Each component package exports a Register(*Registry) function
//  2. componentregistry.Register orchestrates all built-in registrations
//  3. The host program registers any third-party kinds on top
//  4. The registry is then treated as frozen and shared across parses
//
// Example component registration:
//
//	// In filter/threshold.go
//	func Register(r *component.Registry) {
//		component.Register(r, "threshold", func(cfg ThresholdConfig, _ *component.Registry) (Filter, error) {
//			return NewThresholdFilter(cfg.Level), nil
//		})
//	}
//
// # Concurrency
//
// The registry is built once at startup and frozen. Lookups take a read
// lock, so a shared registry tolerates concurrent configuration parses;
// registered build functions must hold no unsynchronized mutable state.
// Re-registering a (family, kind) pair replaces the earlier entry, which is
// how host programs override built-in kinds.
package component
