package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
	"github.com/Lukazoid/log4rs/types"
)

// Format identifies the text format of a configuration document.
type Format int

const (
	// FormatYAML parses documents with gopkg.in/yaml.v3
	FormatYAML Format = iota
	// FormatJSON parses documents with encoding/json
	FormatJSON
	// FormatTOML parses documents with github.com/pelletier/go-toml/v2
	FormatTOML
)

// String implements fmt.Stringer for Format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatForPath infers the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatYAML, fmt.Errorf("cannot infer config format from path %q", path)
	}
}

// rawConfig is the semi-typed intermediate form of a document: scalar
// fields structurally decoded, component payloads left generic for the
// registry to interpret.
type rawConfig struct {
	RefreshRate *types.Duration
	Root        *rawRoot
	Appenders   map[string]rawAppender
	Loggers     map[string]rawLogger
}

type rawRoot struct {
	Level     *types.Level `json:"level"`
	Appenders []string     `json:"appenders"`
}

type rawLogger struct {
	Level     *types.Level `json:"level"`
	Appenders []string     `json:"appenders"`
	Additive  *bool        `json:"additive"`
}

// rawAppender is a kind-tagged component descriptor plus the filter
// descriptors nested under it. Filter stanzas stay as generic maps; the
// registry splits out their kind during assembly.
type rawAppender struct {
	Kind    string
	Config  component.Raw
	Filters []map[string]any
}

// parseRaw parses and shapes a document. Any error here is fatal: a
// document that cannot be parsed or does not match the schema produces no
// configuration at all.
func parseRaw(text string, format Format) (*rawConfig, error) {
	doc, err := parseDocument(text, format)
	if err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %w", errors.ErrParsingFailed, err),
			"Config", "Parse", "document parse")
	}

	raw, err := shapeRaw(doc)
	if err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %w", errors.ErrParsingFailed, err),
			"Config", "Parse", "schema shaping")
	}
	return raw, nil
}

// parseDocument runs the format-specific parser and normalizes the result
// to a string-keyed tree.
func parseDocument(text string, format Format) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal([]byte(text), &doc)
	case FormatJSON:
		err = json.Unmarshal([]byte(text), &doc)
	case FormatTOML:
		err = toml.Unmarshal([]byte(text), &doc)
	default:
		err = fmt.Errorf("unsupported format %d", int(format))
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// An empty document is a valid, empty configuration.
		doc = map[string]any{}
	}
	normalized, ok := component.Normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a map")
	}
	return normalized, nil
}

// shapeRaw applies the schema to the generic tree: typed decoding for the
// scalar portions, manual splitting for the component descriptors whose
// payloads must stay generic.
func shapeRaw(doc map[string]any) (*rawConfig, error) {
	var scalar struct {
		RefreshRate *types.Duration      `json:"refresh_rate"`
		Root        *rawRoot             `json:"root"`
		Loggers     map[string]rawLogger `json:"loggers"`
	}
	subset := component.Raw{}
	for _, key := range []string{"refresh_rate", "root", "loggers"} {
		if v, ok := doc[key]; ok {
			subset[key] = v
		}
	}
	if err := subset.Decode(&scalar); err != nil {
		return nil, err
	}

	raw := &rawConfig{
		RefreshRate: scalar.RefreshRate,
		Root:        scalar.Root,
		Loggers:     scalar.Loggers,
		Appenders:   map[string]rawAppender{},
	}

	appenders, ok := doc["appenders"]
	if !ok {
		return raw, nil
	}
	appenderMap, ok := appenders.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("appenders must be a map, got %T", appenders)
	}
	for name, v := range appenderMap {
		stanza, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("appender %q must be a map, got %T", name, v)
		}
		ra, err := splitAppender(stanza)
		if err != nil {
			return nil, fmt.Errorf("appender %q: %w", name, err)
		}
		raw.Appenders[name] = ra
	}
	return raw, nil
}

// splitAppender separates the reserved keys (kind, filters) from an
// appender stanza; everything else is the appender's generic configuration.
func splitAppender(stanza map[string]any) (rawAppender, error) {
	kind := GetString(stanza, "kind", "")
	if kind == "" {
		return rawAppender{}, fmt.Errorf("missing or non-string kind")
	}

	var filters []map[string]any
	if v, ok := stanza["filters"]; ok {
		list, ok := v.([]any)
		if !ok {
			return rawAppender{}, fmt.Errorf("filters must be a list, got %T", v)
		}
		for i, item := range list {
			fm, ok := item.(map[string]any)
			if !ok {
				return rawAppender{}, fmt.Errorf("filter %d must be a map, got %T", i, item)
			}
			filters = append(filters, fm)
		}
	}

	cfg := make(component.Raw, len(stanza))
	for k, v := range stanza {
		if k == "kind" || k == "filters" {
			continue
		}
		cfg[k] = v
	}
	return rawAppender{Kind: kind, Config: cfg, Filters: filters}, nil
}
