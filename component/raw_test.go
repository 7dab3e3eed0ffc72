package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

func TestRaw_Decode(t *testing.T) {
	type target struct {
		Path   string      `json:"path"`
		Append bool        `json:"append"`
		Level  types.Level `json:"level"`
	}

	raw := Raw{"path": "/var/log/app.log", "append": true, "level": "warn"}

	var got target
	require.NoError(t, raw.Decode(&got))
	assert.Equal(t, "/var/log/app.log", got.Path)
	assert.True(t, got.Append)
	assert.Equal(t, types.LevelWarn, got.Level)
}

func TestRaw_DecodeShapeMismatch(t *testing.T) {
	type target struct {
		Count int `json:"count"`
	}

	raw := Raw{"count": "twelve"}

	var got target
	err := raw.Decode(&got)
	require.Error(t, err)
	assert.True(t, errors.IsDeserialization(err))
}

func TestNormalize(t *testing.T) {
	// yaml.v3 falls back to map[any]any for mappings it cannot prove are
	// string-keyed; Normalize must flatten those before the JSON round trip.
	tree := map[any]any{
		"outer": map[any]any{
			"inner": []any{map[any]any{"k": "v"}, "scalar"},
		},
		42: "numeric key",
	}

	normalized := Normalize(tree)
	m, ok := normalized.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "numeric key", m["42"])

	outer, ok := m["outer"].(map[string]any)
	require.True(t, ok)
	list, ok := outer["inner"].([]any)
	require.True(t, ok)
	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", first["k"])
}
