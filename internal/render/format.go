package render

import (
	"fmt"
	"strings"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	DOT  Format = "dot"
)

// Formats lists every supported format.
var Formats = []Format{Text, JSON, YAML, DOT}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML, DOT:
		return f, nil
	case "yml":
		return YAML, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("unknown output format %q: must be one of text, json, yaml, dot", s)
}

// UnsupportedError is returned when a view has no rendering in a format.
type UnsupportedError struct {
	View   string
	Format Format
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s output is not available in %s format", e.View, e.Format)
}
