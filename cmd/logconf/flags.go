package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	Format      string
	LogLevel    string
	LogFormat   string
	Strict      bool
	ListKinds   bool
	ShowVersion bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("LOGCONF_CONFIG", "log4rs.yaml"),
		"Path to configuration file (env: LOGCONF_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("LOGCONF_CONFIG", "log4rs.yaml"),
		"Path to configuration file (env: LOGCONF_CONFIG)")

	flag.StringVar(&cfg.Format, "format", "",
		"Document format: yaml, json, toml (default: inferred from extension)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("LOGCONF_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: LOGCONF_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("LOGCONF_LOG_FORMAT", "text"),
		"Log format: json, text (env: LOGCONF_LOG_FORMAT)")

	flag.BoolVar(&cfg.Strict, "strict", false,
		"Exit non-zero when the document has recoverable problems")

	flag.BoolVar(&cfg.ListKinds, "kinds", false,
		"List registered component kinds and exit")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	flag.Usage = printDetailedHelp
	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.Format != "" && !contains([]string{"yaml", "yml", "json", "toml"}, cfg.Format) {
		return fmt.Errorf("invalid document format: %s", cfg.Format)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Logging Configuration Inspector

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Inspect a configuration
  %s --config=/etc/app/log4rs.yaml

  # Validate strictly in CI
  %s --config=log4rs.toml --strict

  # List the available component kinds
  %s --kinds

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
