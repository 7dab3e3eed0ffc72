package types

import "time"

// Record is a single log event as seen by appenders, filters, and encoders.
// The logging engine that produces records is external to this module; the
// built-in components only read them.
type Record struct {
	Level     Level     `json:"level"`
	Target    string    `json:"target"` // originating logger name
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecord creates a record stamped with the current time.
func NewRecord(level Level, target, message string) *Record {
	return &Record{
		Level:     level,
		Target:    target,
		Message:   message,
		Timestamp: time.Now(),
	}
}
