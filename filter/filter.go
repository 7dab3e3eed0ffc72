// Package filter provides the filter component family: predicates attached
// to appenders that decide per record whether it is written.
//
// Filters attached to an appender are evaluated in configuration order with
// short-circuit semantics: the first filter returning Reject or Accept
// decides, Neutral passes the record to the next filter. A record that is
// Neutral through the whole chain is written.
package filter

import (
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// Response is a filter's verdict on a record.
type Response int

const (
	// Neutral defers the decision to the next filter in the chain
	Neutral Response = iota
	// Accept writes the record, skipping any remaining filters
	Accept
	// Reject drops the record, skipping any remaining filters
	Reject
)

// String implements fmt.Stringer for Response
func (r Response) String() string {
	switch r {
	case Neutral:
		return "neutral"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Filter is the filter component family. Implementations must be safe for
// concurrent use; one filter instance may be shared by the whole pipeline.
type Filter interface {
	Filter(record *types.Record) Response
}

// ThresholdFilter rejects all records at a level below a threshold.
type ThresholdFilter struct {
	level types.Level
}

// NewThresholdFilter creates a ThresholdFilter with the specified threshold.
func NewThresholdFilter(level types.Level) *ThresholdFilter {
	return &ThresholdFilter{level: level}
}

// Filter implements the Filter interface
func (f *ThresholdFilter) Filter(record *types.Record) Response {
	if !f.level.Enabled(record.Level) {
		return Reject
	}
	return Neutral
}

// ThresholdConfig is the configuration shape for the "threshold" kind.
type ThresholdConfig struct {
	// Level is the threshold to filter at. Required.
	Level *types.Level `json:"level"`
}

// Register registers the built-in filter kinds with the registry.
func Register(r *component.Registry) {
	component.Register(r, "threshold", func(cfg ThresholdConfig, _ *component.Registry) (Filter, error) {
		if cfg.Level == nil {
			return nil, errors.WrapDeserialization(
				errors.ErrMissingConfig, "ThresholdFilter", "Register", "level is required")
		}
		return NewThresholdFilter(*cfg.Level), nil
	})
}
