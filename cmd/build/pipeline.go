package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/connectome"
	"github.com/LegacyCodeHQ/connectome/internal/config"
)

// Pipeline runs one full pass: read every source, accumulate the graph, render it.
type Pipeline struct {
	Config *config.Config
	Logger *slog.Logger
	// Opener defaults to reading from the local filesystem.
	Opener connectome.SourceOpener
}

// Build reads all configured sources in order into a new graph.
func (p Pipeline) Build() (*connectome.Graph, error) {
	sources, err := p.Config.ConnectomeSources()
	if err != nil {
		return nil, err
	}

	builder := connectome.Builder{
		Opener: p.Opener,
		Marker: p.Config.InhibitoryMarker,
		Logger: p.Logger,
	}
	graph, err := builder.Build(sources)
	if err != nil {
		return nil, fmt.Errorf("failed to build connectome: %w", err)
	}
	return graph, nil
}

// Render formats g in the configured output format.
func (p Pipeline) Render(g *connectome.Graph, opts formatters.RenderOptions) (string, error) {
	formatter, err := NewFormatter(p.Config.Format)
	if err != nil {
		return "", err
	}
	return formatter.Format(g, opts)
}

// Run builds, renders and writes the graph to the configured output path.
// It returns the graph and its rendered form; on an export failure both are
// still returned so the caller can retry the export.
func (p Pipeline) Run(opts formatters.RenderOptions) (*connectome.Graph, string, error) {
	graph, err := p.Build()
	if err != nil {
		return nil, "", err
	}

	output, err := p.Render(graph, opts)
	if err != nil {
		return graph, "", fmt.Errorf("failed to render connectome: %w", err)
	}

	if err := Export(p.Config.Output, output); err != nil {
		return graph, output, err
	}
	return graph, output, nil
}

// Export writes content to path as UTF-8 text, creating parent directories.
// A failed export leaves any existing file at path untouched.
func Export(path, content string) error {
	if path == "" {
		return &connectome.ExportWriteError{Path: path, Err: fmt.Errorf("output path is empty")}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &connectome.ExportWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &connectome.ExportWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &connectome.ExportWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &connectome.ExportWriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &connectome.ExportWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &connectome.ExportWriteError{Path: path, Err: err}
	}
	return nil
}
