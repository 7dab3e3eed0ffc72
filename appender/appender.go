// Package appender provides the appender component family and the built-in
// console and file kinds. An appender owns one output destination and
// serializes writes to it; what gets written is delegated to an encoder
// from the encode package.
package appender

import (
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/types"
)

// Appender is the appender component family. Append must be safe for
// concurrent use; implementations serialize access to their destination.
type Appender interface {
	// Append writes one record to the destination.
	Append(record *types.Record) error
	// Flush forces any buffered records out to the destination.
	Flush() error
}

// resolveEncoder builds the encoder declared by a component's "encoder"
// stanza. An absent stanza and an absent kind both fall back to the
// "pattern" kind, matching the documented config syntax.
func resolveEncoder(stanza map[string]any, r *component.Registry) (encode.Encoder, error) {
	if stanza == nil {
		stanza = map[string]any{}
	}
	return component.DeserializeNested[encode.Encoder](r, stanza, "pattern")
}
