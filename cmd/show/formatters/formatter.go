package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatDOT  OutputFormat = "dot"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatHTML OutputFormat = "html"
)

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses a format name, case-insensitively.
func ParseOutputFormat(raw string) (OutputFormat, bool) {
	switch OutputFormat(strings.ToLower(raw)) {
	case OutputFormatDOT:
		return OutputFormatDOT, true
	case OutputFormatJSON:
		return OutputFormatJSON, true
	case OutputFormatHTML:
		return OutputFormatHTML, true
	}
	return "", false
}

// SupportedFormats returns the valid format names for help text.
func SupportedFormats() string {
	return strings.Join([]string{
		OutputFormatDOT.String(),
		OutputFormatJSON.String(),
		OutputFormatHTML.String(),
	}, ", ")
}

// FormatOptions contains optional parameters for formatting graphs.
type FormatOptions struct {
	// Label is an optional title for the rendered graph
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a graph snapshot to a formatted string representation.
	Format(snapshot codegraph.Snapshot, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (Formatter, error) {
	f, ok := ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormats())
	}

	switch f {
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatHTML:
		return &HTMLFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormats())
}
