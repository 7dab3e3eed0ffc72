package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/types"
)

func testRecord() *types.Record {
	return &types.Record{
		Level:     types.LevelInfo,
		Target:    "app::server",
		Message:   "listening",
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPatternEncoder(t *testing.T) {
	enc, err := NewPatternEncoder("{l} {t} - {m}{n}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testRecord()))
	assert.Equal(t, "info app::server - listening\n", buf.String())
}

func TestPatternEncoder_Timestamp(t *testing.T) {
	enc, err := NewPatternEncoder("{d}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testRecord()))
	assert.Equal(t, "2024-03-01T12:00:00Z", buf.String())
}

func TestPatternEncoder_EscapedBraces(t *testing.T) {
	enc, err := NewPatternEncoder("{{{m}}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testRecord()))
	assert.Equal(t, "{listening}", buf.String())
}

func TestPatternEncoder_Invalid(t *testing.T) {
	for _, pattern := range []string{"{x}", "{m", "}", "{message}"} {
		_, err := NewPatternEncoder(pattern)
		assert.Error(t, err, "pattern %q", pattern)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder().Encode(&buf, testRecord()))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, "listening", decoded["message"])
	assert.Equal(t, "app::server", decoded["target"])
}

func TestRegister_Kinds(t *testing.T) {
	registry := component.NewRegistry()
	Register(registry)

	enc, err := component.Deserialize[Encoder](registry, "pattern", component.Raw{"pattern": "{m}"})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testRecord()))
	assert.Equal(t, "listening", buf.String())

	// Empty pattern falls back to the default.
	enc, err = component.Deserialize[Encoder](registry, "pattern", component.Raw{})
	require.NoError(t, err)
	pe, ok := enc.(*PatternEncoder)
	require.True(t, ok)
	assert.Equal(t, DefaultPattern, pe.Pattern())

	_, err = component.Deserialize[Encoder](registry, "json", component.Raw{})
	require.NoError(t, err)

	_, err = component.Deserialize[Encoder](registry, "pattern", component.Raw{"pattern": "{z}"})
	require.Error(t, err)
}
