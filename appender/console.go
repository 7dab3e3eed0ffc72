package appender

import (
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// validate checks component configuration structs against their struct tags.
// A single instance is shared; the validator caches struct metadata.
var validate = validator.New()

// ConsoleAppender writes records to standard output or standard error.
type ConsoleAppender struct {
	mu      sync.Mutex
	w       io.Writer
	encoder encode.Encoder
}

// NewConsoleAppender creates a console appender writing to w with the given
// encoder.
func NewConsoleAppender(w io.Writer, encoder encode.Encoder) *ConsoleAppender {
	return &ConsoleAppender{w: w, encoder: encoder}
}

// Append implements the Appender interface
func (a *ConsoleAppender) Append(record *types.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.encoder.Encode(a.w, record)
}

// Flush implements the Appender interface. Console writes are unbuffered.
func (a *ConsoleAppender) Flush() error {
	return nil
}

// ConsoleConfig is the configuration shape for the "console" kind.
type ConsoleConfig struct {
	// Target selects the stream: "stdout" (default) or "stderr".
	Target string `json:"target" validate:"omitempty,oneof=stdout stderr"`
	// Encoder is the nested encoder stanza. Defaults to the pattern encoder.
	Encoder map[string]any `json:"encoder"`
}

func registerConsole(r *component.Registry) {
	component.Register(r, "console", func(cfg ConsoleConfig, reg *component.Registry) (Appender, error) {
		if err := validate.Struct(cfg); err != nil {
			return nil, errors.WrapDeserialization(err, "ConsoleAppender", "Register", "config validation")
		}

		encoder, err := resolveEncoder(cfg.Encoder, reg)
		if err != nil {
			return nil, err
		}

		w := io.Writer(os.Stdout)
		if cfg.Target == "stderr" {
			w = os.Stderr
		}
		return NewConsoleAppender(w, encoder), nil
	})
}
