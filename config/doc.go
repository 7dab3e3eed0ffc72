// Package config assembles a logging pipeline configuration from a YAML,
// JSON, or TOML document.
//
// # Overview
//
// Parse turns a configuration document into a validated Runtime
// configuration: a root logger, named appenders with their filter chains,
// and named loggers. Component stanzas in the document carry a string
// "kind" tag; the component registry passed to Parse maps each tag to a
// factory, so third-party appender, filter, or encoder kinds unknown to
// this module participate the same way the built-ins do.
//
// # Partial failure
//
// Only a document that fails to parse aborts the load. Every other problem
// is recoverable: an appender whose kind is unregistered, a filter whose
// configuration does not match its factory's shape, a duplicate logger
// name. Each is recorded in Config.Errors, the offending component is
// skipped, and assembly continues, so one bad stanza never takes down the
// whole configuration. Callers decide whether any recorded error is fatal:
//
//	cfg, err := config.Parse(text, config.FormatYAML, registry)
//	if err != nil {
//	    return err // unparseable document
//	}
//	for _, e := range cfg.Errors {
//	    slog.Warn("config problem", "error", e)
//	}
//
// # Document syntax
//
// All formats share one structure; in YAML:
//
//	refresh_rate: 30 seconds
//
//	appenders:
//	  stdout:
//	    kind: console
//	    filters:
//	      - kind: threshold
//	        level: warn
//	    encoder:
//	      pattern: "{d} {l} {t} - {m}{n}"
//
//	root:
//	  level: info
//	  appenders:
//	    - stdout
//
//	loggers:
//	  app::db:
//	    level: debug
//	    appenders: [stdout]
//	    additive: false
//
// Parse itself performs no I/O and holds no state between calls; a frozen
// registry may serve any number of concurrent parses.
package config
