package config

import (
	"log/slog"
	"os"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
)

// Load reads a configuration file, inferring the format from its
// extension, and assembles it against the registry. Recoverable errors are
// logged at Warn through the default slog logger and returned in
// Config.Errors; the load still succeeds.
func Load(path string, registry *component.Registry) (*Config, error) {
	return LoadWithLogger(path, registry, slog.Default())
}

// LoadWithLogger is Load with an explicit logger.
func LoadWithLogger(path string, registry *component.Registry, logger *slog.Logger) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		err = errors.WrapFatal(err, "Config", "Load", "format detection")
		DefaultMetrics().observeLoad(format, nil, err)
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.WrapFatal(err, "Config", "Load", "file read")
		DefaultMetrics().observeLoad(format, nil, err)
		return nil, err
	}

	cfg, err := Parse(string(data), format, registry)
	DefaultMetrics().observeLoad(format, cfg, err)
	if err != nil {
		logger.Error("configuration load failed",
			"path", path,
			"format", format.String(),
			"error", err)
		return nil, err
	}

	for _, e := range cfg.Errors {
		logger.Warn("configuration problem, component skipped",
			"path", path,
			"class", errors.Classify(e).String(),
			"error", e)
	}
	return cfg, nil
}
