package connectome

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Source is one input table and the layout its rows follow.
type Source struct {
	Kind SourceKind
	Path string
}

// SourceOpener opens an input table for reading.
// This allows the caller to control where tables come from (filesystem, memory, etc.)
type SourceOpener func(path string) (io.ReadCloser, error)

// OpenFile is the SourceOpener for tables on the local filesystem.
func OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Builder accumulates a Graph from an ordered list of sources.
type Builder struct {
	Opener SourceOpener
	Marker string
	Logger *slog.Logger
}

// Build reads every source in order and returns the accumulated graph.
// Sources are drained one at a time; a later source overwrites the weight of
// any (source, target) pair an earlier one already set. Any open, read or
// parse failure aborts the build.
func (b Builder) Build(sources []Source) (*Graph, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}

	graph := NewGraph()
	for _, src := range sources {
		if err := b.ingestSource(graph, src); err != nil {
			return nil, err
		}
	}

	b.logger().Debug("connectome built",
		slog.Int("sources", len(sources)),
		slog.Int("nodes", graph.NodeCount()),
		slog.Int("edges", graph.EdgeCount()))

	return graph, nil
}

func (b Builder) ingestSource(graph *Graph, src Source) error {
	reader, err := NewReader(src.Path, src.Kind, b.Marker)
	if err != nil {
		return err
	}

	opener := b.Opener
	if opener == nil {
		opener = OpenFile
	}

	rc, err := opener(src.Path)
	if err != nil {
		return &SourceUnavailableError{Path: src.Path, Err: err}
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			b.logger().Warn("failed to close source", slog.String("path", src.Path), slog.Any("error", cerr))
		}
	}()

	records := 0
	for record, err := range reader.Records(rc) {
		if err != nil {
			return err
		}
		graph.Ingest(record)
		records++
	}

	b.logger().Debug("source ingested",
		slog.String("path", src.Path),
		slog.String("kind", src.Kind.String()),
		slog.Int("records", records))

	return nil
}

func (b Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
