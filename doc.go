// Package log4rs assembles logging pipeline configurations from text
// documents.
//
// A configuration document (YAML, JSON or TOML) names appenders, filters,
// encoders and loggers; each component stanza carries a `kind` tag that
// selects a deserializer from a pluggable registry. Loading produces a
// validated runtime configuration plus an ordered list of the problems
// encountered on the way: a broken component is skipped, not the whole
// document.
//
// # Package Layout
//
//   - types: log levels, records, durations
//   - errors: classified errors (fatal, deserialization, validation)
//   - component: the kind-tagged deserializer registry
//   - encode: encoders (pattern, json)
//   - filter: filters (threshold)
//   - appender: appenders (console, file) and appender/rolling
//     (rolling_file with its policies, triggers and rollers)
//   - config: document parsing and runtime assembly
//   - componentregistry: explicit registration of every built-in kind
//   - cmd/logconf: CLI to inspect and validate configuration files
//
// # Usage
//
//	registry := componentregistry.Default()
//	cfg, err := config.Load("log4rs.yaml", registry)
//	if err != nil {
//		// the document itself was unusable
//	}
//	for _, e := range cfg.Errors {
//		// a component was skipped
//	}
//	// cfg.Runtime is always usable
//
// Custom component kinds register through component.Register and become
// available to every subsequent load.
package log4rs
