package encode

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// DefaultPattern is the format used when an appender's encoder stanza
// leaves the pattern unset.
const DefaultPattern = "{d} {l} {t} - {m}{n}"

// PatternEncoder formats records according to a pattern string. Supported
// directives:
//
//	{d}  timestamp (RFC3339)
//	{l}  level name
//	{t}  target (logger name)
//	{m}  message
//	{n}  newline
//	{{ and }} emit literal braces
type PatternEncoder struct {
	pattern  string
	segments []segment
}

// segment is one compiled piece of a pattern: either a literal chunk or a
// single directive.
type segment struct {
	literal   string
	directive byte
}

// NewPatternEncoder compiles the pattern string. Unknown directives are a
// configuration error.
func NewPatternEncoder(pattern string) (*PatternEncoder, error) {
	segments, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &PatternEncoder{pattern: pattern, segments: segments}, nil
}

// Pattern returns the source pattern string.
func (e *PatternEncoder) Pattern() string {
	return e.pattern
}

// Encode implements the Encoder interface
func (e *PatternEncoder) Encode(w io.Writer, record *types.Record) error {
	var b strings.Builder
	for _, seg := range e.segments {
		if seg.directive == 0 {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.directive {
		case 'd':
			b.WriteString(record.Timestamp.Format(time.RFC3339))
		case 'l':
			b.WriteString(record.Level.String())
		case 't':
			b.WriteString(record.Target)
		case 'm':
			b.WriteString(record.Message)
		case 'n':
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func compilePattern(pattern string) ([]segment, error) {
	var segments []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{' && i+1 < len(pattern) && pattern[i+1] == '{':
			literal.WriteByte('{')
			i++
		case c == '}' && i+1 < len(pattern) && pattern[i+1] == '}':
			literal.WriteByte('}')
			i++
		case c == '{':
			if i+2 >= len(pattern) || pattern[i+2] != '}' {
				return nil, fmt.Errorf("malformed directive at offset %d in pattern %q", i, pattern)
			}
			d := pattern[i+1]
			if !strings.ContainsRune("dltmn", rune(d)) {
				return nil, fmt.Errorf("unknown directive {%c} in pattern %q", d, pattern)
			}
			flush()
			segments = append(segments, segment{directive: d})
			i += 2
		case c == '}':
			return nil, fmt.Errorf("unmatched } at offset %d in pattern %q", i, pattern)
		default:
			literal.WriteByte(c)
		}
	}
	flush()
	return segments, nil
}

// PatternConfig is the configuration shape for the "pattern" kind.
type PatternConfig struct {
	// Pattern is the format string. Defaults to DefaultPattern.
	Pattern string `json:"pattern"`
}

func registerPattern(r *component.Registry) {
	component.Register(r, "pattern", func(cfg PatternConfig, _ *component.Registry) (Encoder, error) {
		pattern := cfg.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		enc, err := NewPatternEncoder(pattern)
		if err != nil {
			return nil, errors.WrapDeserialization(err, "PatternEncoder", "Register", "pattern compile")
		}
		return enc, nil
	})
}
