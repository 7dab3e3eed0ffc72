package appender

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/types"
)

func newTestRegistry() *component.Registry {
	registry := component.NewRegistry()
	encode.Register(registry)
	Register(registry)
	return registry
}

func TestConsoleAppender_Append(t *testing.T) {
	enc, err := encode.NewPatternEncoder("{l}: {m}{n}")
	require.NoError(t, err)

	var buf bytes.Buffer
	a := NewConsoleAppender(&buf, enc)
	require.NoError(t, a.Append(types.NewRecord(types.LevelInfo, "app", "hello")))
	require.NoError(t, a.Flush())
	assert.Equal(t, "info: hello\n", buf.String())
}

func TestRegister_Console(t *testing.T) {
	registry := newTestRegistry()

	a, err := component.Deserialize[Appender](registry, "console", component.Raw{})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleAppender{}, a)

	a, err = component.Deserialize[Appender](registry, "console", component.Raw{"target": "stderr"})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleAppender{}, a)
}

func TestRegister_ConsoleInvalidTarget(t *testing.T) {
	registry := newTestRegistry()

	_, err := component.Deserialize[Appender](registry, "console", component.Raw{"target": "syslog"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target")
}

func TestRegister_File(t *testing.T) {
	registry := newTestRegistry()
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	a, err := component.Deserialize[Appender](registry, "file", component.Raw{
		"path":    path,
		"encoder": map[string]any{"kind": "pattern", "pattern": "{m}{n}"},
	})
	require.NoError(t, err)

	fa, ok := a.(*FileAppender)
	require.True(t, ok)
	defer fa.Close()

	require.NoError(t, a.Append(types.NewRecord(types.LevelWarn, "app", "first")))
	require.NoError(t, a.Append(types.NewRecord(types.LevelWarn, "app", "second")))
	require.NoError(t, a.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestRegister_FileMissingPath(t *testing.T) {
	registry := newTestRegistry()

	_, err := component.Deserialize[Appender](registry, "file", component.Raw{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Path")
}

func TestFileAppender_Truncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("old contents\n"), 0o644))

	enc, err := encode.NewPatternEncoder("{m}{n}")
	require.NoError(t, err)

	a, err := NewFileAppender(path, false, enc)
	require.NoError(t, err)
	require.NoError(t, a.Append(types.NewRecord(types.LevelInfo, "app", "new")))
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestRegister_FileDefaultEncoder(t *testing.T) {
	registry := newTestRegistry()
	path := filepath.Join(t.TempDir(), "app.log")

	// No encoder stanza at all: the pattern encoder is implied.
	a, err := component.Deserialize[Appender](registry, "file", component.Raw{"path": path})
	require.NoError(t, err)
	require.NoError(t, a.Append(types.NewRecord(types.LevelError, "db", "disk full")))
	require.NoError(t, a.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "error db - disk full")
}
