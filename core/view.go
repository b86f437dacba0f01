// File: view.go
// Role: Non-mutating graph views (induced subgraphs).
// Determinism:
//   - Preserves vertex/edge IDs. Atoms are copied by value, Metadata maps are shared.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both kept. IDs in keep that are not in g are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyGraph(g, func(id string) bool { return keep[id] }, true, false)
}

// WithoutVertices returns the subgraph induced by every vertex not in drop.
//
// Complexity: O(V + E).
func WithoutVertices(g *Graph, drop []string) *Graph {
	skip := make(map[string]bool, len(drop))
	for _, id := range drop {
		skip[id] = true
	}
	keep := make(map[string]bool, g.VertexCount())
	for _, id := range g.Vertices() {
		if !skip[id] {
			keep[id] = true
		}
	}

	return InducedSubgraph(g, keep)
}
