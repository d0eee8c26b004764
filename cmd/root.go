package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/connectome/cmd/build"
	"github.com/LegacyCodeHQ/connectome/cmd/formats"
	"github.com/LegacyCodeHQ/connectome/cmd/summary"
	"github.com/LegacyCodeHQ/connectome/cmd/watch"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connectome",
		Short: "Build a signed, weighted connectome from neuron connection tables",
		Long: `Connectome turns neuron-to-neuron and neuron-to-muscle connection tables
into a directed graph whose edge weights are connection counts, negated for
inhibitory (GABA) connections, and writes it as sorted JSON, DOT or Mermaid.

Use 'connectome --help' to see all available commands, or 'connectome <command> --help'
for detailed information about a specific command.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.AddCommand(build.NewCommand())
	cmd.AddCommand(summary.NewCommand())
	cmd.AddCommand(watch.NewCommand())
	cmd.AddCommand(formats.NewCommand())

	cmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
