package mermaid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/connectome"
)

// Formatter formats connectomes as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the connectome to Mermaid.js flowchart format.
func (f *Formatter) Format(g *connectome.Graph, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder

	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't hold arbitrary characters, so nodes get
	// positional IDs in sorted order.
	nodes := g.Nodes()
	nodeIDs := make(map[string]string, len(nodes))
	for i, node := range nodes {
		nodeIDs[node] = fmt.Sprintf("n%d", i)
	}

	var sinkNodes []string
	for _, node := range nodes {
		label := strings.ReplaceAll(node, "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[node], label))
		if len(g.Targets(node)) == 0 {
			sinkNodes = append(sinkNodes, nodeIDs[node])
		}
	}

	edgeIndex := 0
	var inhibitoryEdgeIndices []string
	for _, source := range nodes {
		for _, target := range g.Targets(source) {
			weight, _ := g.Weight(source, target)
			arrow := "-->"
			if weight < 0 {
				arrow = "-.->"
				inhibitoryEdgeIndices = append(inhibitoryEdgeIndices, fmt.Sprintf("%d", edgeIndex))
			}
			sb.WriteString(fmt.Sprintf("    %s %s|%d| %s\n", nodeIDs[source], arrow, weight, nodeIDs[target]))
			edgeIndex++
		}
	}

	if len(sinkNodes) > 0 {
		sb.WriteString("    classDef sinkNode fill:#d3d3d3,stroke:#333\n")
		sb.WriteString(fmt.Sprintf("    class %s sinkNode\n", strings.Join(sinkNodes, ",")))
	}
	if len(inhibitoryEdgeIndices) > 0 {
		sb.WriteString(fmt.Sprintf("    linkStyle %s stroke:#d62728\n", strings.Join(inhibitoryEdgeIndices, ",")))
	}

	return sb.String(), nil
}

// GenerateURL creates a mermaid.live URL with the diagram embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	payload := map[string]interface{}{
		"code": output,
		"mermaid": map[string]interface{}{
			"theme": "default",
		},
		"autoSync":      true,
		"updateDiagram": true,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("https://mermaid.live/edit#%s", url.PathEscape(output)), true
	}

	encoded := base64.URLEncoding.EncodeToString(jsonBytes)
	return fmt.Sprintf("https://mermaid.live/edit#base64:%s", encoded), true
}
