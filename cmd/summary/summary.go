package summary

import (
	"slices"

	"github.com/LegacyCodeHQ/connectome/connectome"
)

// Summary holds counts describing a built connectome.
type Summary struct {
	Nodes      int
	Edges      int
	Excitatory int
	Inhibitory int
	Zero       int
	SelfLoops  int
	// Sinks are nodes with no outgoing connections (typically muscles).
	Sinks []string
	// Roots are nodes that no connection targets.
	Roots []string
}

// Summarize computes a Summary over the graphlib view of g.
func Summarize(g *connectome.Graph) (Summary, error) {
	lib, err := g.ToGraphlib()
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	if s.Nodes, err = lib.Order(); err != nil {
		return Summary{}, err
	}
	if s.Edges, err = lib.Size(); err != nil {
		return Summary{}, err
	}

	adjacency, err := lib.AdjacencyMap()
	if err != nil {
		return Summary{}, err
	}
	predecessors, err := lib.PredecessorMap()
	if err != nil {
		return Summary{}, err
	}

	for node, edges := range adjacency {
		if len(edges) == 0 {
			s.Sinks = append(s.Sinks, node)
		}
		if len(predecessors[node]) == 0 {
			s.Roots = append(s.Roots, node)
		}
		for target, edge := range edges {
			if target == node {
				s.SelfLoops++
			}
			switch weight := edge.Properties.Weight; {
			case weight > 0:
				s.Excitatory++
			case weight < 0:
				s.Inhibitory++
			default:
				s.Zero++
			}
		}
	}

	slices.Sort(s.Sinks)
	slices.Sort(s.Roots)
	return s, nil
}
