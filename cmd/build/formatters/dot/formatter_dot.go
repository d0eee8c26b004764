package dot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/connectome"
)

const sinkFillColor = "lightgrey"

// Formatter formats connectomes as Graphviz DOT.
type Formatter struct{}

// Format converts the connectome to Graphviz DOT format.
// Nodes without outgoing connections are shaded and inhibitory connections
// are drawn in red with a flat arrowhead.
func (f *Formatter) Format(g *connectome.Graph, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph connectome {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=ellipse];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	nodes := g.Nodes()
	for _, node := range nodes {
		if len(g.Targets(node)) == 0 {
			sb.WriteString(fmt.Sprintf("  %q [style=filled, fillcolor=%s];\n", node, sinkFillColor))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %q;\n", node))
	}

	hasEdges := false
	var edgesSB strings.Builder
	for _, source := range nodes {
		for _, target := range g.Targets(source) {
			hasEdges = true
			weight, _ := g.Weight(source, target)
			if weight < 0 {
				edgesSB.WriteString(fmt.Sprintf("  %q -> %q [label=\"%d\", color=red, arrowhead=tee];\n", source, target, weight))
				continue
			}
			edgesSB.WriteString(fmt.Sprintf("  %q -> %q [label=\"%d\"];\n", source, target, weight))
		}
	}
	if hasEdges {
		sb.WriteString("\n")
		sb.WriteString(edgesSB.String())
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
