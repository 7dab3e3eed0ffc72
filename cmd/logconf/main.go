// Package main implements the logconf command-line tool. logconf loads a
// logging configuration document (YAML, JSON or TOML), assembles it
// against the built-in component registry, and reports the resulting
// runtime configuration together with any per-component problems.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"

	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/appender/rolling"
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/componentregistry"
	"github.com/Lukazoid/log4rs/config"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/filter"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "logconf"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("logconf failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	registry := componentregistry.Default()

	if cliCfg.ListKinds {
		printKinds(registry)
		return nil
	}

	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	cfg, err := loadConfig(cliCfg, registry, logger)
	if err != nil {
		return err
	}

	printSummary(cfg)

	if cliCfg.Strict && len(cfg.Errors) > 0 {
		return fmt.Errorf("%d configuration problem(s) in strict mode", len(cfg.Errors))
	}
	return nil
}

// loadConfig assembles the document, honoring an explicit format override.
func loadConfig(cliCfg *CLIConfig, registry *component.Registry, logger *slog.Logger) (*config.Config, error) {
	if cliCfg.Format == "" {
		return config.LoadWithLogger(cliCfg.ConfigPath, registry, logger)
	}

	format, err := parseFormat(cliCfg.Format)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(cliCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := config.Parse(string(data), format, registry)
	if err != nil {
		return nil, err
	}
	for _, e := range cfg.Errors {
		logger.Warn("configuration problem, component skipped",
			"path", cliCfg.ConfigPath,
			"class", errors.Classify(e).String(),
			"error", e)
	}
	return cfg, nil
}

func parseFormat(name string) (config.Format, error) {
	switch name {
	case "yaml", "yml":
		return config.FormatYAML, nil
	case "json":
		return config.FormatJSON, nil
	case "toml":
		return config.FormatTOML, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}

// printSummary prints the assembled runtime in a stable order.
func printSummary(cfg *config.Config) {
	if cfg.RefreshRate != nil {
		fmt.Printf("refresh rate: %s\n", cfg.RefreshRate)
	}
	fmt.Printf("root: level=%s appenders=%v\n",
		cfg.Runtime.Root.Level, cfg.Runtime.Root.Appenders)

	for _, name := range sortedKeys(cfg.Runtime.Appenders) {
		a := cfg.Runtime.Appenders[name]
		fmt.Printf("appender %q: %T, %d filter(s)\n", name, a.Instance, len(a.Filters))
	}
	for _, name := range sortedKeys(cfg.Runtime.Loggers) {
		l := cfg.Runtime.Loggers[name]
		level := "inherited"
		if l.Level != nil {
			level = l.Level.String()
		}
		fmt.Printf("logger %q: level=%s appenders=%v additive=%t\n",
			name, level, l.Appenders, l.Additive)
	}

	if len(cfg.Errors) == 0 {
		fmt.Println("ok: no configuration problems")
		return
	}
	fmt.Printf("%d problem(s):\n", len(cfg.Errors))
	for _, e := range cfg.Errors {
		fmt.Printf("  [%s] %v\n", errors.Classify(e), e)
	}
}

// printKinds lists every registered deserializer kind by family.
func printKinds(registry *component.Registry) {
	families := []struct {
		name  string
		kinds []string
	}{
		{"appender", component.Kinds[appender.Appender](registry)},
		{"encoder", component.Kinds[encode.Encoder](registry)},
		{"filter", component.Kinds[filter.Filter](registry)},
		{"policy", component.Kinds[rolling.Policy](registry)},
		{"roller", component.Kinds[rolling.Roller](registry)},
		{"trigger", component.Kinds[rolling.Trigger](registry)},
	}
	for _, f := range families {
		sort.Strings(f.kinds)
		fmt.Printf("%s: %v\n", f.name, f.kinds)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
