package formats

import (
	"fmt"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/spf13/cobra"
)

// Cmd represents the formats command.
var Cmd = NewCommand()

// NewCommand returns a new formats command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List all supported output formats",
		Long: `List the output formats the build command can write and their file extensions.

Examples:
  connectome formats`,
		RunE: runFormats,
	}

	return cmd
}

func runFormats(cmd *cobra.Command, _ []string) error {
	for _, format := range formatters.Formats() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", format, format.Extension()); err != nil {
			return err
		}
	}

	return nil
}
