package connectome

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

const fieldDelimiter = ","

const maxLineSize = 1024 * 1024

// Reader parses the rows of one connection table into edge records.
// Fields are split on a bare comma; quoting is not supported, so a field
// containing a comma shifts every field after it.
type Reader struct {
	// Path names the table in error messages.
	Path   string
	Layout Layout
	// Marker is the substring of the polarity field that marks a row as inhibitory.
	Marker string
}

// NewReader creates a Reader for a table of the given kind.
func NewReader(path string, kind SourceKind, marker string) (Reader, error) {
	layout, err := LayoutFor(kind)
	if err != nil {
		return Reader{}, err
	}
	if marker == "" {
		marker = DefaultInhibitoryMarker
	}
	return Reader{Path: path, Layout: layout, Marker: marker}, nil
}

// Records lazily yields one record per data row of r. Header rows and empty
// lines are skipped. Iteration stops after the first error.
func (rd Reader) Records(r io.Reader) iter.Seq2[EdgeRecord, error] {
	return func(yield func(EdgeRecord, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			record, ok, err := rd.parseRow(scanner.Text(), lineNumber)
			if err != nil {
				yield(EdgeRecord{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(record, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(EdgeRecord{}, &SourceUnavailableError{Path: rd.Path, Err: err})
		}
	}
}

// parseRow parses a single row. The bool is false for rows that carry no
// record (header rows and empty lines).
func (rd Reader) parseRow(line string, lineNumber int) (EdgeRecord, bool, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return EdgeRecord{}, false, nil
	}
	if !utf8.ValidString(line) {
		return EdgeRecord{}, false, &MalformedRecordError{Path: rd.Path, Line: lineNumber, Reason: "invalid UTF-8"}
	}

	fields := strings.Split(line, fieldDelimiter)
	if fields[0] == rd.Layout.HeaderSentinel {
		return EdgeRecord{}, false, nil
	}

	if len(fields) < rd.Layout.MinFields() {
		return EdgeRecord{}, false, &MalformedRecordError{
			Path:   rd.Path,
			Line:   lineNumber,
			Reason: fmt.Sprintf("expected at least %d fields, got %d", rd.Layout.MinFields(), len(fields)),
		}
	}

	rawMagnitude := fields[rd.Layout.MagnitudeField]
	magnitude, err := strconv.Atoi(strings.TrimSpace(rawMagnitude))
	if err != nil {
		return EdgeRecord{}, false, &MalformedRecordError{
			Path:   rd.Path,
			Line:   lineNumber,
			Reason: fmt.Sprintf("magnitude %q is not an integer", rawMagnitude),
			Err:    err,
		}
	}

	return EdgeRecord{
		Source:    fields[rd.Layout.SourceField],
		Target:    fields[rd.Layout.TargetField],
		Magnitude: magnitude,
		Polarity:  rd.polarity(fields[rd.Layout.PolarityField]),
	}, true, nil
}

func (rd Reader) polarity(descriptor string) Polarity {
	marker := rd.Marker
	if marker == "" {
		marker = DefaultInhibitoryMarker
	}
	if strings.Contains(descriptor, marker) {
		return Inhibitory
	}
	return Excitatory
}
