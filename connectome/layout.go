package connectome

import (
	"fmt"
	"strings"
)

// SourceKind identifies the field layout of a connection table.
type SourceKind string

const (
	NeuronToNeuron SourceKind = "neuron-to-neuron"
	NeuronToMuscle SourceKind = "neuron-to-muscle"
)

// String returns the string representation of the kind
func (k SourceKind) String() string {
	return string(k)
}

// Layout holds the column indices of a table kind.
// Rows whose first field equals HeaderSentinel are column titles.
type Layout struct {
	SourceField    int
	TargetField    int
	MagnitudeField int
	PolarityField  int
	HeaderSentinel string
}

// MinFields is the number of fields a row needs to be parsed with this layout.
func (l Layout) MinFields() int {
	return max(l.SourceField, l.TargetField, l.MagnitudeField, l.PolarityField) + 1
}

var layouts = map[SourceKind]Layout{
	NeuronToNeuron: {SourceField: 0, TargetField: 1, MagnitudeField: 3, PolarityField: 4, HeaderSentinel: "Origin"},
	NeuronToMuscle: {SourceField: 0, TargetField: 1, MagnitudeField: 2, PolarityField: 3, HeaderSentinel: "Neuron"},
}

// LayoutFor returns the field layout for kind.
func LayoutFor(kind SourceKind) (Layout, error) {
	layout, ok := layouts[kind]
	if !ok {
		return Layout{}, fmt.Errorf("unknown source kind: %s (valid options: %s)", kind, SupportedKinds())
	}
	return layout, nil
}

// ParseSourceKind converts a string to a SourceKind.
func ParseSourceKind(value string) (SourceKind, bool) {
	kind := SourceKind(strings.ToLower(strings.TrimSpace(value)))
	_, ok := layouts[kind]
	return kind, ok
}

// SupportedKinds returns a comma-separated list of source kinds.
func SupportedKinds() string {
	return strings.Join([]string{NeuronToNeuron.String(), NeuronToMuscle.String()}, ", ")
}
