package jsonfmt

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/LegacyCodeHQ/connectome/cmd/build/formatters"
	"github.com/LegacyCodeHQ/connectome/connectome"
)

const indent = "    "

// Formatter renders a connectome as a JSON object of objects.
//
// Keys are sorted at both levels, nested objects are indented by four spaces,
// nodes without connections render as {}, and the document has no trailing
// newline.
type Formatter struct{}

// Format converts the connectome to JSON.
// The opts parameter is accepted for interface compatibility but not used.
func (f *Formatter) Format(g *connectome.Graph, _ formatters.RenderOptions) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)

	if err := encoder.Encode(g.Adjacency()); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
