package watch

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/connectome/cmd/build"
	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/internal/config"
	"github.com/LegacyCodeHQ/connectome/internal/logging"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	flags build.ConfigFlags
	port  int
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the connectome whenever an input table changes",
		Long: `Build the connectome, then watch the input tables and rebuild the output
file after every change. A failed rebuild is reported and the previous output
file is left in place.

With --port, the latest output is also served over HTTP at / and streamed as
server-sent events at /events.

Examples:
  connectome watch
  connectome watch -f dot -o connectome.dot
  connectome watch -P 4900`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	opts.flags.BindSourceFlags(cmd)
	opts.flags.BindOutputFlags(cmd)
	cmd.Flags().IntVarP(&opts.port, "port", "P", 0, "Serve the latest output on this HTTP port (0 disables)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	cfg, err := opts.flags.Resolve(cmd)
	if err != nil {
		return err
	}
	if _, err := build.NewFormatter(cfg.Format); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	pipeline := build.Pipeline{Config: cfg, Logger: logger}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var b *broker
	if opts.port > 0 {
		b = newBroker()
		srv := newServer(b, opts.port, contentTypeFor(cfg.Format))

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
		}
		go srv.Serve(ln)
		defer srv.Close()
	}

	rebuild := func() {
		rebuildOnce(pipeline, b, logger)
	}
	rebuild()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %d source tables, writing %s\n", len(cfg.Sources), cfg.Output)
	if opts.port > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Serving at http://localhost:%d\n", opts.port)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, sourcePaths(cfg), debounceInterval, logger, rebuild)
}

func rebuildOnce(pipeline build.Pipeline, b *broker, logger *slog.Logger) {
	graph, output, err := pipeline.Run(formatters.RenderOptions{})
	if err != nil {
		logger.Error("connectome rebuild failed", slog.Any("error", err))
		return
	}
	if b != nil {
		b.publish(output, graph.NodeCount(), graph.EdgeCount())
	}
	logger.Info("connectome written",
		slog.String("path", pipeline.Config.Output),
		slog.Int("nodes", graph.NodeCount()),
		slog.Int("edges", graph.EdgeCount()))
}

func sourcePaths(cfg *config.Config) []string {
	paths := make([]string, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		paths = append(paths, src.Path)
	}
	return paths
}

func contentTypeFor(format string) string {
	f, _ := formatters.ParseOutputFormat(format)
	switch f {
	case formatters.OutputFormatJSON:
		return "application/json; charset=utf-8"
	case formatters.OutputFormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
