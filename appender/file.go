package appender

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// FileAppender writes records to a single file through a buffered writer.
type FileAppender struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	w       *bufio.Writer
	encoder encode.Encoder
}

// NewFileAppender opens (or creates) the file at path and returns an
// appender writing to it. Parent directories are created as needed. When
// appendMode is false the file is truncated.
func NewFileAppender(path string, appendMode bool, encoder encode.Encoder) (*FileAppender, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "FileAppender", "New", "directory creation")
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "FileAppender", "New", "file open")
	}

	return &FileAppender{
		path:    path,
		file:    file,
		w:       bufio.NewWriter(file),
		encoder: encoder,
	}, nil
}

// Path returns the file path this appender writes to.
func (a *FileAppender) Path() string {
	return a.path
}

// Append implements the Appender interface
func (a *FileAppender) Append(record *types.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.encoder.Encode(a.w, record)
}

// Flush implements the Appender interface
func (a *FileAppender) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.w.Flush()
}

// Close flushes buffered records and closes the file handle.
func (a *FileAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.w.Flush(); err != nil {
		return err
	}
	return a.file.Close()
}

// FileConfig is the configuration shape for the "file" kind.
type FileConfig struct {
	// Path of the log file. Required.
	Path string `json:"path" validate:"required"`
	// Append controls whether an existing file is appended to (default)
	// or truncated.
	Append *bool `json:"append"`
	// Encoder is the nested encoder stanza. Defaults to the pattern encoder.
	Encoder map[string]any `json:"encoder"`
}

func registerFile(r *component.Registry) {
	component.Register(r, "file", func(cfg FileConfig, reg *component.Registry) (Appender, error) {
		if err := validate.Struct(cfg); err != nil {
			return nil, errors.WrapDeserialization(err, "FileAppender", "Register", "config validation")
		}

		encoder, err := resolveEncoder(cfg.Encoder, reg)
		if err != nil {
			return nil, err
		}

		appendMode := true
		if cfg.Append != nil {
			appendMode = *cfg.Append
		}
		return NewFileAppender(cfg.Path, appendMode, encoder)
	})
}

// Register registers the built-in appender kinds (console, file) with the
// registry. The rolling_file kind lives in the rolling subpackage.
func Register(r *component.Registry) {
	registerConsole(r)
	registerFile(r)
}
