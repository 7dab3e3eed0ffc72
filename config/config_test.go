package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/componentregistry"
	"github.com/Lukazoid/log4rs/config"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/filter"
	"github.com/Lukazoid/log4rs/types"
)

func TestParse_EmptyDocument(t *testing.T) {
	registry := componentregistry.Default()

	for _, tt := range []struct {
		format config.Format
		text   string
	}{
		{config.FormatYAML, "{}"},
		{config.FormatYAML, ""},
		{config.FormatJSON, "{}"},
		{config.FormatTOML, ""},
	} {
		cfg, err := config.Parse(tt.text, tt.format, registry)
		require.NoError(t, err, "format %s", tt.format)
		assert.Empty(t, cfg.Errors, "format %s", tt.format)
		assert.Equal(t, config.DefaultRootLevel, cfg.Runtime.Root.Level)
		assert.Empty(t, cfg.Runtime.Root.Appenders)
		assert.Empty(t, cfg.Runtime.Appenders)
		assert.Empty(t, cfg.Runtime.Loggers)
		assert.Nil(t, cfg.RefreshRate)
	}
}

func TestParse_FullDocument(t *testing.T) {
	text := `
refresh_rate: 60 seconds

appenders:
  console:
    kind: console
    filters:
      - kind: threshold
        level: debug
  baz:
    kind: file
    path: ` + filepath.Join(t.TempDir(), "baz.log") + `
    encoder:
      pattern: "{m}"

root:
  appenders:
    - console
  level: info

loggers:
  foo::bar::baz:
    level: warn
    appenders:
      - baz
    additive: false
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)
	assert.Empty(t, cfg.Errors)

	require.NotNil(t, cfg.RefreshRate)
	assert.Equal(t, time.Minute, cfg.RefreshRate.Std())

	assert.Equal(t, types.LevelInfo, cfg.Runtime.Root.Level)
	assert.Equal(t, []string{"console"}, cfg.Runtime.Root.Appenders)

	require.Len(t, cfg.Runtime.Appenders, 2)
	console := cfg.Runtime.Appenders["console"]
	assert.Len(t, console.Filters, 1)
	baz := cfg.Runtime.Appenders["baz"]
	assert.Empty(t, baz.Filters)

	require.Len(t, cfg.Runtime.Loggers, 1)
	logger := cfg.Runtime.Loggers["foo::bar::baz"]
	require.NotNil(t, logger.Level)
	assert.Equal(t, types.LevelWarn, *logger.Level)
	assert.Equal(t, []string{"baz"}, logger.Appenders)
	assert.False(t, logger.Additive)
}

func TestParse_ConsoleScenario(t *testing.T) {
	text := `
appenders:
  console:
    kind: console
root:
  appenders: [console]
  level: info
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)

	assert.Empty(t, cfg.Errors)
	assert.Equal(t, types.LevelInfo, cfg.Runtime.Root.Level)
	require.Len(t, cfg.Runtime.Appenders, 1)
	assert.Empty(t, cfg.Runtime.Appenders["console"].Filters)
	assert.Empty(t, cfg.Runtime.Loggers)
}

func TestParse_UnknownAppenderKind(t *testing.T) {
	text := `
appenders:
  a:
    kind: bogus
root:
  appenders: [a]
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)

	// The unresolved appender is dropped; the dangling root reference is
	// preserved for the consumer to resolve.
	assert.Empty(t, cfg.Runtime.Appenders)
	assert.Equal(t, []string{"a"}, cfg.Runtime.Root.Appenders)

	require.Len(t, cfg.Errors, 1)
	assert.True(t, errors.IsDeserialization(cfg.Errors[0]))
	assert.Contains(t, cfg.Errors[0].Error(), "no appender deserializer for kind `bogus` registered")
}

func TestParse_FailedFilterOmitted(t *testing.T) {
	registry := componentregistry.Default()

	// Second of three filters fails to build; the appender keeps the other
	// two in document order.
	component.Register(registry, "tagged", func(cfg struct {
		Tag string `json:"tag"`
	}, _ *component.Registry) (filter.Filter, error) {
		return taggedFilter{tag: cfg.Tag}, nil
	})

	text := `
appenders:
  console:
    kind: console
    filters:
      - kind: tagged
        tag: first
      - kind: missing_kind
      - kind: tagged
        tag: third
`
	cfg, err := config.Parse(text, config.FormatYAML, registry)
	require.NoError(t, err)

	require.Len(t, cfg.Errors, 1)
	assert.Contains(t, cfg.Errors[0].Error(), "missing_kind")

	console := cfg.Runtime.Appenders["console"]
	require.Len(t, console.Filters, 2)
	assert.Equal(t, "first", console.Filters[0].(taggedFilter).tag)
	assert.Equal(t, "third", console.Filters[1].(taggedFilter).tag)
}

type taggedFilter struct {
	tag string
}

func (f taggedFilter) Filter(*types.Record) filter.Response {
	return filter.Neutral
}

func TestParse_BadFilterKeepsAppender(t *testing.T) {
	text := `
appenders:
  console:
    kind: console
    filters:
      - kind: threshold
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)

	// threshold without a level fails, but the appender itself survives.
	require.Len(t, cfg.Errors, 1)
	assert.Contains(t, cfg.Errors[0].Error(), "level is required")
	require.Len(t, cfg.Runtime.Appenders, 1)
	assert.Empty(t, cfg.Runtime.Appenders["console"].Filters)
}

func TestParse_SyntaxErrorIsFatal(t *testing.T) {
	cfg, err := config.Parse("appenders: [unclosed", config.FormatYAML, componentregistry.Default())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsFatal(err))

	cfg, err = config.Parse("{not json", config.FormatJSON, componentregistry.Default())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsFatal(err))
}

func TestParse_SchemaViolationIsFatal(t *testing.T) {
	// An appender stanza without a kind does not match the raw schema.
	text := `
appenders:
  a:
    path: /tmp/a.log
`
	_, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
	assert.Contains(t, err.Error(), `appender "a"`)

	// A scalar where the schema expects a map is fatal too.
	_, err = config.Parse("root: 12", config.FormatYAML, componentregistry.Default())
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestParse_Idempotent(t *testing.T) {
	text := `
appenders:
  console:
    kind: console
  broken:
    kind: bogus
loggers:
  app:
    level: debug
`
	registry := componentregistry.Default()

	first, err := config.Parse(text, config.FormatYAML, registry)
	require.NoError(t, err)
	second, err := config.Parse(text, config.FormatYAML, registry)
	require.NoError(t, err)

	assert.Equal(t, len(first.Errors), len(second.Errors))
	for i := range first.Errors {
		assert.Equal(t, first.Errors[i].Error(), second.Errors[i].Error())
	}
	assert.Equal(t, sortedNames(first.Runtime.Appenders), sortedNames(second.Runtime.Appenders))
	assert.Equal(t, first.Runtime.Root, second.Runtime.Root)
	assert.Equal(t, first.Runtime.Loggers, second.Runtime.Loggers)
}

func sortedNames(m map[string]config.Appender) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

func TestParse_RegistryOverride(t *testing.T) {
	registry := componentregistry.Default()

	var buildCount int
	component.Register(registry, "console", func(_ struct{}, _ *component.Registry) (appender.Appender, error) {
		buildCount++
		return countingAppender{}, nil
	})

	text := `
appenders:
  console:
    kind: console
`
	cfg, err := config.Parse(text, config.FormatYAML, registry)
	require.NoError(t, err)
	assert.Empty(t, cfg.Errors)
	assert.Equal(t, 1, buildCount)
	assert.IsType(t, countingAppender{}, cfg.Runtime.Appenders["console"].Instance)
}

type countingAppender struct{}

func (countingAppender) Append(*types.Record) error { return nil }
func (countingAppender) Flush() error               { return nil }

func TestParse_LoggerDefaults(t *testing.T) {
	text := `
loggers:
  app:
    appenders: [console]
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)

	logger := cfg.Runtime.Loggers["app"]
	assert.Nil(t, logger.Level, "absent level inherits from the ancestor")
	assert.True(t, logger.Additive, "additivity defaults to true")
}

func TestParse_TOML(t *testing.T) {
	text := `
refresh_rate = "30 seconds"

[appenders.stdout]
kind = "console"

[root]
level = "warn"
appenders = ["stdout"]
`
	cfg, err := config.Parse(text, config.FormatTOML, componentregistry.Default())
	require.NoError(t, err)
	assert.Empty(t, cfg.Errors)
	assert.Equal(t, types.LevelWarn, cfg.Runtime.Root.Level)
	require.NotNil(t, cfg.RefreshRate)
	assert.Equal(t, 30*time.Second, cfg.RefreshRate.Std())
	assert.Len(t, cfg.Runtime.Appenders, 1)
}

func TestParse_JSON(t *testing.T) {
	text := `{
  "appenders": {"stdout": {"kind": "console", "target": "stderr"}},
  "root": {"level": "trace", "appenders": ["stdout"]}
}`
	cfg, err := config.Parse(text, config.FormatJSON, componentregistry.Default())
	require.NoError(t, err)
	assert.Empty(t, cfg.Errors)
	assert.Equal(t, types.LevelTrace, cfg.Runtime.Root.Level)
}

func TestParse_RollingFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	text := `
appenders:
  archive:
    kind: rolling_file
    path: ` + filepath.Join(dir, "app.log") + `
    policy:
      trigger:
        kind: size
        limit: 1 mb
      roller:
        kind: delete
`
	cfg, err := config.Parse(text, config.FormatYAML, componentregistry.Default())
	require.NoError(t, err)
	assert.Empty(t, cfg.Errors)
	require.Len(t, cfg.Runtime.Appenders, 1)
}
