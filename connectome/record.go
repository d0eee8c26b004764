package connectome

// Polarity is the sign applied to a connection's magnitude.
type Polarity int

const (
	Excitatory Polarity = 1
	Inhibitory Polarity = -1
)

// String returns the polarity name.
func (p Polarity) String() string {
	if p == Inhibitory {
		return "inhibitory"
	}
	return "excitatory"
}

// DefaultInhibitoryMarker is the neurotransmitter token that marks a connection as inhibitory.
const DefaultInhibitoryMarker = "GABA"

// EdgeRecord is one parsed row of a connection table.
type EdgeRecord struct {
	Source    string
	Target    string
	Magnitude int
	Polarity  Polarity
}

// Weight returns the signed edge weight.
func (r EdgeRecord) Weight() int {
	return r.Magnitude * int(r.Polarity)
}
