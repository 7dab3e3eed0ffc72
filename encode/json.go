package encode

import (
	"encoding/json"
	"io"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/types"
)

// JSONEncoder writes each record as a single JSON object followed by a
// newline, suitable for line-oriented log shippers.
type JSONEncoder struct{}

// NewJSONEncoder creates a JSONEncoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Encode implements the Encoder interface
func (e *JSONEncoder) Encode(w io.Writer, record *types.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// JSONConfig is the configuration shape for the "json" kind. The encoder
// takes no options; the struct exists so the kind participates in the same
// typed-config path as every other component.
type JSONConfig struct{}

// Register registers the built-in encoder kinds with the registry.
func Register(r *component.Registry) {
	registerPattern(r)
	component.Register(r, "json", func(_ JSONConfig, _ *component.Registry) (Encoder, error) {
		return NewJSONEncoder(), nil
	})
}
