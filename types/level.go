// Package types contains shared value types used across the log4rs packages:
// log levels, log records, and configuration durations.
package types

import (
	"fmt"
	"strings"
)

// Level represents the verbosity threshold of a logger, appender, or filter.
// Levels are ordered: Off < Error < Warn < Info < Debug < Trace. A record
// passes a threshold when its level is less than or equal to it.
type Level int

// Level constants, from most to least restrictive
const (
	// LevelOff disables all logging
	LevelOff Level = iota
	// LevelError enables only error records
	LevelError
	// LevelWarn enables warning and error records
	LevelWarn
	// LevelInfo enables informational records and above
	LevelInfo
	// LevelDebug enables debug records and above
	LevelDebug
	// LevelTrace enables everything
	LevelTrace
)

// String implements fmt.Stringer for Level
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Enabled reports whether a record at the given level passes this threshold.
func (l Level) Enabled(record Level) bool {
	return record <= l
}

// ParseLevel converts a level name into a Level. Names are matched
// case-insensitively. Unknown names return an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelOff, fmt.Errorf("unknown level %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as their
// lowercase names in every supported config format.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Config decoding
// normalizes every source format through encoding/json, which routes string
// scalars here, so level names decode uniformly.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
