package connectome

import "fmt"

// SourceUnavailableError reports an input table that could not be opened or read.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// MalformedRecordError reports a row that could not be parsed into an EdgeRecord.
// Line is 1-based.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	location := e.Path
	if location == "" {
		location = "<input>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: malformed record: %s: %v", location, e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s:%d: malformed record: %s", location, e.Line, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ExportWriteError reports an output artifact that could not be written.
// The graph that was being exported is unaffected.
type ExportWriteError struct {
	Path string
	Err  error
}

func (e *ExportWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *ExportWriteError) Unwrap() error {
	return e.Err
}
