package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration with config-friendly decoding. Both Go
// duration syntax ("30s", "1m30s") and spelled-out unit strings
// ("30 seconds", "1 minute") are accepted, matching the refresh_rate
// syntax used by existing configuration files.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer for Duration
func (d Duration) String() string {
	return time.Duration(d).String()
}

// unitNames maps spelled-out unit words to their duration value.
var unitNames = map[string]time.Duration{
	"ns":           time.Nanosecond,
	"nanosecond":   time.Nanosecond,
	"nanoseconds":  time.Nanosecond,
	"us":           time.Microsecond,
	"microsecond":  time.Microsecond,
	"microseconds": time.Microsecond,
	"ms":           time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"sec":          time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"min":          time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            24 * time.Hour,
	"day":          24 * time.Hour,
	"days":         24 * time.Hour,
}

// ParseDuration parses a duration string in either Go syntax or the
// spelled-out "<number> <unit>" form.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if parsed, err := time.ParseDuration(s); err == nil {
		return Duration(parsed), nil
	}

	var total time.Duration
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	for i := 0; i < len(fields); i += 2 {
		count, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || count < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		unit, ok := unitNames[strings.ToLower(fields[i+1])]
		if !ok {
			return 0, fmt.Errorf("invalid duration unit %q in %q", fields[i+1], s)
		}
		total += time.Duration(count * float64(unit))
	}
	return Duration(total), nil
}

// MarshalText implements encoding.TextMarshaler for Duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Duration
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
