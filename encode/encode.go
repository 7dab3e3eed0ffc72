// Package encode provides the encoder component family: formatters that
// turn a log record into bytes for an appender to write.
package encode

import (
	"io"

	"github.com/Lukazoid/log4rs/types"
)

// Encoder is the encoder component family. Implementations must be safe
// for concurrent use; appenders serialize writes but may share encoders.
type Encoder interface {
	Encode(w io.Writer, record *types.Record) error
}
