// Package rolling provides the rolling_file appender kind and the three
// component families it composes: policies decide when and how the log file
// rolls, triggers decide when, and rollers decide how.
package rolling

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// LogFile describes the active log file as seen by policies and triggers.
type LogFile struct {
	// Path of the active file.
	Path string
	// Size in bytes.
	Size int64
}

// Policy is the rolling policy component family. Process is called after
// every append with the current file state; rolling the file is the
// policy's responsibility.
type Policy interface {
	Process(file *LogFile) (rolled bool, err error)
}

// Trigger is the trigger component family: the "when" half of a compound
// policy.
type Trigger interface {
	Trigger(file *LogFile) (bool, error)
}

// Roller is the roller component family: the "how" half of a compound
// policy. Roll is called with the path of the just-closed log file and must
// move it out of the way or delete it.
type Roller interface {
	Roll(path string) error
}

// RollingFileAppender writes to a file and consults its policy after every
// append, reopening the file when the policy rolled it.
type RollingFileAppender struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	w       *bufio.Writer
	size    int64
	encoder encode.Encoder
	policy  Policy
}

// NewRollingFileAppender opens the file at path for appending and returns
// an appender governed by the given policy.
func NewRollingFileAppender(path string, encoder encode.Encoder, policy Policy) (*RollingFileAppender, error) {
	a := &RollingFileAppender{path: path, encoder: encoder, policy: policy}
	if err := a.open(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *RollingFileAppender) open() error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return errors.Wrap(err, "RollingFileAppender", "open", "directory creation")
	}
	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "RollingFileAppender", "open", "file open")
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return errors.Wrap(err, "RollingFileAppender", "open", "file stat")
	}
	a.file = file
	a.w = bufio.NewWriter(file)
	a.size = info.Size()
	return nil
}

// Append implements the appender.Appender interface
func (a *RollingFileAppender) Append(record *types.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var buf bytes.Buffer
	if err := a.encoder.Encode(&buf, record); err != nil {
		return err
	}
	n, err := a.w.Write(buf.Bytes())
	a.size += int64(n)
	if err != nil {
		return err
	}
	// The file on disk must be complete before the policy can roll it.
	if err := a.w.Flush(); err != nil {
		return err
	}

	rolled, err := a.policy.Process(&LogFile{Path: a.path, Size: a.size})
	if err != nil {
		return errors.Wrap(err, "RollingFileAppender", "Append", "policy processing")
	}
	if rolled {
		return a.reopen()
	}
	return nil
}

// reopen closes the rolled file and starts a fresh one. The policy has
// already flushed and moved the old file by the time this runs.
func (a *RollingFileAppender) reopen() error {
	a.file.Close()
	return a.open()
}

// Flush implements the appender.Appender interface
func (a *RollingFileAppender) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.w.Flush()
}

// Close flushes buffered records and closes the file handle.
func (a *RollingFileAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.w.Flush(); err != nil {
		return err
	}
	return a.file.Close()
}
