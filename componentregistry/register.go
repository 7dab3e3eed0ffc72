// Package componentregistry provides component registration for the
// built-in log4rs component kinds.
package componentregistry

import (
	"errors"

	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/appender/rolling"
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	pkgerrors "github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/filter"
)

// Register registers all built-in component kinds with the provided
// registry:
//
// Appenders:
//   - console (stdout/stderr)
//   - file (single file)
//   - rolling_file (file with rotation)
//
// Encoders:
//   - pattern (format-string encoder, the default)
//   - json (one object per line)
//
// Filters:
//   - threshold (level cutoff)
//
// Rolling policies and their parts:
//   - compound (policy), size (trigger), delete and fixed_window (rollers)
//
// Host programs needing only a subset register the individual packages
// instead; nothing here is mandatory. Registering a kind again afterwards
// overrides the built-in.
func Register(registry *component.Registry) error {
	if registry == nil {
		return pkgerrors.WrapFatal(
			errors.New("registry cannot be nil"),
			"ComponentRegistry", "Register", "registry validation")
	}

	encode.Register(registry)
	filter.Register(registry)
	appender.Register(registry)
	rolling.Register(registry)
	return nil
}

// Default creates a registry pre-populated with every built-in kind.
func Default() *component.Registry {
	registry := component.NewRegistry()
	// Register only fails on a nil registry.
	_ = Register(registry)
	return registry
}
