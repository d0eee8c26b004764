package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
)

var supportedFormats = []OutputFormat{
	OutputFormatJSON,
	OutputFormatDOT,
	OutputFormatMermaid,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// Extension returns the conventional file extension for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatDOT:
		return ".dot"
	case OutputFormatMermaid:
		return ".mmd"
	default:
		return ".json"
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
func ParseOutputFormat(value string) (OutputFormat, bool) {
	normalized := OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	for _, f := range supportedFormats {
		if f == normalized {
			return f, true
		}
	}
	return "", false
}

// Formats returns the supported output formats in display order.
func Formats() []OutputFormat {
	out := make([]OutputFormat, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// SupportedFormats returns a comma-separated list of supported format names.
func SupportedFormats() string {
	names := make([]string, 0, len(supportedFormats))
	for _, f := range supportedFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
