package build

import (
	"fmt"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters/dot"
	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters/jsonfmt"
	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters/mermaid"
)

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (formatters.Formatter, error) {
	f, ok := formatters.ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}

	switch f {
	case formatters.OutputFormatJSON:
		return &jsonfmt.Formatter{}, nil
	case formatters.OutputFormatDOT:
		return &dot.Formatter{}, nil
	case formatters.OutputFormatMermaid:
		return &mermaid.Formatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}
}
