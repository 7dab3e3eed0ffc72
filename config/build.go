package config

import (
	"fmt"

	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/filter"
	"github.com/Lukazoid/log4rs/types"
)

// Root is the root logger configuration.
type Root struct {
	Level     types.Level
	Appenders []string
}

// Appender pairs a built appender instance with its name and filter chain.
// Filter order matches the document; the consuming engine evaluates the
// chain short-circuit, so order is significant.
type Appender struct {
	Name     string
	Instance appender.Appender
	Filters  []filter.Filter
}

// Logger is a named logger configuration. A nil Level inherits from the
// nearest ancestor logger; resolution happens in the consuming engine.
type Logger struct {
	Name      string
	Level     *types.Level
	Appenders []string
	Additive  bool
}

// Runtime is the assembled, validated configuration handed to the logging
// engine. Appender names referenced by Root and Loggers are not guaranteed
// to exist in Appenders; dangling references are the consumer's concern.
type Runtime struct {
	Root      Root
	Appenders map[string]Appender
	Loggers   map[string]Logger
}

// Builder accumulates appenders and loggers and validates them as a batch.
type Builder struct {
	appenders []Appender
	loggers   []Logger
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Appender adds an appender to the configuration under construction.
func (b *Builder) Appender(a Appender) *Builder {
	b.appenders = append(b.appenders, a)
	return b
}

// Logger adds a logger to the configuration under construction.
func (b *Builder) Logger(l Logger) *Builder {
	b.loggers = append(b.loggers, l)
	return b
}

// Build assembles the runtime configuration in lossy mode: structural rule
// violations are returned as validation errors while the offending entries
// are dropped (first registration of a name wins) and everything else is
// kept. The Runtime is always usable.
func (b *Builder) Build(root Root) (*Runtime, []error) {
	var errs []error

	runtime := &Runtime{
		Root:      root,
		Appenders: make(map[string]Appender, len(b.appenders)),
		Loggers:   make(map[string]Logger, len(b.loggers)),
	}

	for _, a := range b.appenders {
		if a.Name == "" {
			errs = append(errs, errors.WrapValidation(
				errors.ErrInvalidConfig, "Builder", "Build", "appender name must not be empty"))
			continue
		}
		if _, exists := runtime.Appenders[a.Name]; exists {
			errs = append(errs, errors.WrapValidation(
				fmt.Errorf("%w: appender `%s`", errors.ErrDuplicateName, a.Name),
				"Builder", "Build", "appender name check"))
			continue
		}
		runtime.Appenders[a.Name] = a
	}

	for _, l := range b.loggers {
		if l.Name == "" {
			errs = append(errs, errors.WrapValidation(
				errors.ErrInvalidConfig, "Builder", "Build", "logger name must not be empty"))
			continue
		}
		if _, exists := runtime.Loggers[l.Name]; exists {
			errs = append(errs, errors.WrapValidation(
				fmt.Errorf("%w: logger `%s`", errors.ErrDuplicateName, l.Name),
				"Builder", "Build", "logger name check"))
			continue
		}
		runtime.Loggers[l.Name] = l
	}

	return runtime, errs
}
