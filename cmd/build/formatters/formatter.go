package formatters

import "github.com/LegacyCodeHQ/connectome/connectome"

// RenderOptions contains optional parameters for rendering a connectome.
type RenderOptions struct {
	// Label is an optional title for formats that support one
	Label string
}

// Formatter is the interface that all graph formatters must implement.
// Output must list nodes and their targets in ascending byte-wise order so
// that identical graphs always render identically.
type Formatter interface {
	Format(g *connectome.Graph, opts RenderOptions) (string, error)
}

// URLGenerator is implemented by formatters whose output can be opened in an
// online viewer.
type URLGenerator interface {
	GenerateURL(output string) (string, bool)
}
