package connectome

import (
	"maps"
	"slices"
)

// Graph is a directed, signed, weighted connectivity graph keyed by node id.
//
// Every node named by an ingested record is present, including nodes with no
// outgoing connections. A repeated (source, target) pair keeps the weight of
// the record ingested last.
type Graph struct {
	adjacency map[string]map[string]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]int)}
}

// Ingest applies one record to the graph.
func (g *Graph) Ingest(r EdgeRecord) {
	g.ensureNode(r.Source)[r.Target] = r.Weight()
	g.ensureNode(r.Target)
}

// ensureNode returns the outgoing connections of id, registering id with no
// connections if it is not yet present. An existing map is never replaced.
func (g *Graph) ensureNode(id string) map[string]int {
	targets, ok := g.adjacency[id]
	if !ok {
		targets = make(map[string]int)
		g.adjacency[id] = targets
	}
	return targets
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Weight returns the signed weight of the connection from source to target.
func (g *Graph) Weight(source, target string) (int, bool) {
	w, ok := g.adjacency[source][target]
	return w, ok
}

// Nodes returns all node ids in ascending byte-wise order.
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.adjacency))
}

// Targets returns the targets of id in ascending byte-wise order.
func (g *Graph) Targets(id string) []string {
	return slices.Sorted(maps.Keys(g.adjacency[id]))
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of distinct (source, target) connections.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.adjacency {
		count += len(targets)
	}
	return count
}

// Adjacency returns a copy of the graph as nested maps. Inner maps are never nil.
func (g *Graph) Adjacency() map[string]map[string]int {
	adjacency := make(map[string]map[string]int, len(g.adjacency))
	for node, targets := range g.adjacency {
		adjacency[node] = maps.Clone(targets)
	}
	return adjacency
}
