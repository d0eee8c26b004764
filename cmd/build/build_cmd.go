package build

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/internal/logging"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	flags       ConfigFlags
	label       string
	toStdout    bool
	generateURL bool
}

// Cmd represents the build command
var Cmd = NewCommand()

// NewCommand returns a new build command instance.
func NewCommand() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the connectome from the neuron and muscle tables",
		Long: `Build a directed, signed, weighted connectome from connection tables.

Tables are read in order. Each row becomes a connection whose weight is the
row's connection count, negated when the neurotransmitter column contains the
inhibitory marker. A later row for the same pair replaces the earlier weight.
Every neuron or muscle named anywhere appears in the output.

Examples:
  connectome build                                       # default tables -> connectome.json
  connectome build -o out/connectome.json
  connectome build -i neuron-to-neuron:Connectome.csv,neuron-to-muscle:NeuronsToMuscle.csv
  connectome build -f dot --stdout
  connectome build -f mermaid -u                         # generate visualization URL
  connectome build -C pipeline.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	opts.flags.BindSourceFlags(cmd)
	opts.flags.BindOutputFlags(cmd)
	cmd.Flags().StringVar(&opts.label, "label", "", "Graph title for dot and mermaid output")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "Print the output instead of writing the output file")
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Generate visualization URL (supported formats: dot, mermaid)")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	cfg, err := opts.flags.Resolve(cmd)
	if err != nil {
		return err
	}

	formatter, err := NewFormatter(cfg.Format)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	pipeline := Pipeline{Config: cfg, Logger: logger}

	graph, err := pipeline.Build()
	if err != nil {
		return err
	}

	output, err := formatter.Format(graph, formatters.RenderOptions{Label: opts.label})
	if err != nil {
		return fmt.Errorf("failed to render connectome: %w", err)
	}

	if opts.generateURL {
		urlGenerator, ok := formatter.(formatters.URLGenerator)
		if !ok {
			return fmt.Errorf("--url is not supported for format %s", cfg.Format)
		}
		vizURL, _ := urlGenerator.GenerateURL(output)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), vizURL)
		return err
	}

	if opts.toStdout {
		if !strings.HasSuffix(output, "\n") {
			output += "\n"
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	if err := Export(cfg.Output, output); err != nil {
		return err
	}

	logger.Info("connectome written",
		"path", cfg.Output,
		"format", cfg.Format,
		"nodes", graph.NodeCount(),
		"edges", graph.EdgeCount())

	return nil
}
