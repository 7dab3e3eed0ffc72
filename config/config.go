package config

import (
	"sort"

	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/filter"
	"github.com/Lukazoid/log4rs/types"
)

// DefaultRootLevel is the root logger level when the document supplies no
// root stanza or a root without a level.
const DefaultRootLevel = types.LevelDebug

// Config is the result of one parse: the assembled runtime configuration,
// the requested refresh interval, and every non-fatal error encountered on
// the way. Errors is never nil-checked away by this package: a caller that
// wants strict behavior treats a non-empty slice as failure, a lenient one
// logs and proceeds.
type Config struct {
	// RefreshRate is the requested config re-scan interval, if any.
	// Watching the file is the caller's concern.
	RefreshRate *types.Duration
	// Runtime is the validated configuration. Present even when Errors is
	// not empty.
	Runtime *Runtime
	// Errors are the recoverable problems, in the order they were found.
	Errors []error
}

// Parse assembles a configuration from a document. Only an unparseable
// document returns a non-nil error; every per-component failure lands in
// Config.Errors with that component skipped.
//
// Appenders are processed in name order so results and error lists are
// deterministic regardless of map iteration; within one appender, filters
// keep their document order.
func Parse(text string, format Format, registry *component.Registry) (*Config, error) {
	raw, err := parseRaw(text, format)
	if err != nil {
		return nil, err
	}

	var errs []error

	root := Root{Level: DefaultRootLevel}
	if raw.Root != nil {
		if raw.Root.Level != nil {
			root.Level = *raw.Root.Level
		}
		root.Appenders = raw.Root.Appenders
	}

	builder := NewBuilder()

	for _, name := range sortedKeys(raw.Appenders) {
		ra := raw.Appenders[name]
		instance, err := component.Deserialize[appender.Appender](registry, ra.Kind, ra.Config)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		a := Appender{Name: name, Instance: instance}
		for _, stanza := range ra.Filters {
			f, err := component.DeserializeNested[filter.Filter](registry, stanza, "")
			if err != nil {
				// The filter is omitted; the appender keeps the rest of
				// its chain in order.
				errs = append(errs, err)
				continue
			}
			a.Filters = append(a.Filters, f)
		}
		builder.Appender(a)
	}

	for _, name := range sortedKeys(raw.Loggers) {
		rl := raw.Loggers[name]
		additive := true
		if rl.Additive != nil {
			additive = *rl.Additive
		}
		builder.Logger(Logger{
			Name:      name,
			Level:     rl.Level,
			Appenders: rl.Appenders,
			Additive:  additive,
		})
	}

	runtime, buildErrs := builder.Build(root)
	errs = append(errs, buildErrs...)

	return &Config{
		RefreshRate: raw.RefreshRate,
		Runtime:     runtime,
		Errors:      errs,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
