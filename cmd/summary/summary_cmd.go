package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/LegacyCodeHQ/connectome/cmd/build"
	"github.com/LegacyCodeHQ/connectome/internal/logging"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	flags     build.ConfigFlags
	listNodes bool
}

// Cmd represents the summary command.
var Cmd = NewCommand()

// NewCommand returns a new summary command instance.
func NewCommand() *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print node and connection counts for the built connectome",
		Long: `Build the connectome and print how many nodes and connections it has,
how many connections are excitatory or inhibitory, and which nodes are sinks
(no outgoing connections) or roots (never targeted).

Examples:
  connectome summary
  connectome summary --list
  connectome summary -i neuron-to-neuron:Connectome.csv,neuron-to-muscle:NeuronsToMuscle.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}

	opts.flags.BindSourceFlags(cmd)
	cmd.Flags().BoolVarP(&opts.listNodes, "list", "l", false, "List sink and root node names")

	return cmd
}

func runSummary(cmd *cobra.Command, opts *summaryOptions) error {
	cfg, err := opts.flags.Resolve(cmd)
	if err != nil {
		return err
	}

	pipeline := build.Pipeline{
		Config: cfg,
		Logger: logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
	}
	graph, err := pipeline.Build()
	if err != nil {
		return err
	}

	s, err := Summarize(graph)
	if err != nil {
		return fmt.Errorf("failed to summarize connectome: %w", err)
	}

	return writeSummary(cmd.OutOrStdout(), s, opts.listNodes)
}

func writeSummary(w io.Writer, s Summary, listNodes bool) error {
	lines := []string{
		fmt.Sprintf("Nodes:       %d", s.Nodes),
		fmt.Sprintf("Connections: %d", s.Edges),
		fmt.Sprintf("  excitatory: %d", s.Excitatory),
		fmt.Sprintf("  inhibitory: %d", s.Inhibitory),
		fmt.Sprintf("  zero:       %d", s.Zero),
		fmt.Sprintf("  self-loops: %d", s.SelfLoops),
		fmt.Sprintf("Sinks:       %d", len(s.Sinks)),
		fmt.Sprintf("Roots:       %d", len(s.Roots)),
	}
	if listNodes {
		lines = append(lines,
			"",
			"Sink nodes: "+strings.Join(s.Sinks, ", "),
			"Root nodes: "+strings.Join(s.Roots, ", "),
		)
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
