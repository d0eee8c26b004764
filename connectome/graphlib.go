package connectome

import (
	graphlib "github.com/dominikbraun/graph"
)

// PolarityAttribute is the edge attribute holding the sign of the connection's
// weight: "excitatory", "inhibitory", or ZeroPolarity. Zero weights carry no
// sign, so the table's polarity descriptor cannot be recovered for them.
const PolarityAttribute = "polarity"

// ZeroPolarity labels edges whose weight is zero.
const ZeroPolarity = "zero"

// ToGraphlib copies the graph into a directed, weighted graphlib graph.
// Vertices are added in sorted order and edges carry their signed weight.
func (g *Graph) ToGraphlib() (graphlib.Graph[string, string], error) {
	out := graphlib.New(graphlib.StringHash, graphlib.Directed(), graphlib.Weighted())

	nodes := g.Nodes()
	for _, node := range nodes {
		if err := out.AddVertex(node); err != nil {
			return nil, err
		}
	}

	for _, source := range nodes {
		for _, target := range g.Targets(source) {
			weight := g.adjacency[source][target]
			if err := out.AddEdge(source, target,
				graphlib.EdgeWeight(weight),
				graphlib.EdgeAttribute(PolarityAttribute, polarityName(weight)),
			); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func polarityName(weight int) string {
	switch {
	case weight < 0:
		return Inhibitory.String()
	case weight > 0:
		return Excitatory.String()
	default:
		return ZeroPolarity
	}
}
