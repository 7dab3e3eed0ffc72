package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"error", LevelError, false},
		{"WARN", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Info", LevelInfo, false},
		{"debug", LevelDebug, false},
		{" trace ", LevelTrace, false},
		{"verbose", LevelOff, true},
		{"", LevelOff, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.True(t, LevelInfo.Enabled(LevelError))
	assert.True(t, LevelInfo.Enabled(LevelInfo))
	assert.False(t, LevelInfo.Enabled(LevelDebug))
	assert.False(t, LevelOff.Enabled(LevelError))
	assert.True(t, LevelTrace.Enabled(LevelTrace))
}

func TestLevel_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(LevelWarn)
	require.NoError(t, err)
	assert.Equal(t, `"warn"`, string(data))

	var level Level
	require.NoError(t, json.Unmarshal([]byte(`"debug"`), &level))
	assert.Equal(t, LevelDebug, level)

	assert.Error(t, json.Unmarshal([]byte(`"loud"`), &level))
}
