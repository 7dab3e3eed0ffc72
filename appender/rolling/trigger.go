package rolling

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
)

// ByteSize decodes byte counts from config documents. Plain numbers are
// bytes; strings carry an optional unit: "10 mb", "512kb", "1 gb".
type ByteSize int64

// ParseByteSize parses a byte size string.
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	multiplier := int64(1)
	for _, unit := range []struct {
		suffix string
		factor int64
	}{
		{"tb", 1 << 40},
		{"gb", 1 << 30},
		{"mb", 1 << 20},
		{"kb", 1 << 10},
		{"b", 1},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			multiplier = unit.factor
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			break
		}
	}

	count, err := strconv.ParseFloat(s, 64)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}
	return ByteSize(count * float64(multiplier)), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting both bare numbers
// and unit-suffixed strings.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch val := v.(type) {
	case json.Number:
		n, err := val.Int64()
		if err != nil || n < 0 {
			return fmt.Errorf("invalid byte size %s", val)
		}
		*b = ByteSize(n)
		return nil
	case string:
		parsed, err := ParseByteSize(val)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	default:
		return fmt.Errorf("byte size must be a number or string, got %T", v)
	}
}

// SizeTrigger fires when the active log file reaches a size limit.
type SizeTrigger struct {
	limit int64
}

// NewSizeTrigger creates a SizeTrigger with the given limit in bytes.
func NewSizeTrigger(limit int64) *SizeTrigger {
	return &SizeTrigger{limit: limit}
}

// Trigger implements the Trigger interface
func (t *SizeTrigger) Trigger(file *LogFile) (bool, error) {
	return file.Size >= t.limit, nil
}

// SizeTriggerConfig is the configuration shape for the "size" kind.
type SizeTriggerConfig struct {
	// Limit is the file size at which to roll. Required.
	Limit *ByteSize `json:"limit"`
}

func registerSizeTrigger(r *component.Registry) {
	component.Register(r, "size", func(cfg SizeTriggerConfig, _ *component.Registry) (Trigger, error) {
		if cfg.Limit == nil {
			return nil, errors.WrapDeserialization(
				errors.ErrMissingConfig, "SizeTrigger", "Register", "limit is required")
		}
		return NewSizeTrigger(int64(*cfg.Limit)), nil
	})
}
