// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - Neighbors() returns edges in the same order as NeighborIDs().
// Concurrency:
//   - Read operations hold g.mu read lock.

package core

import "sort"

// NeighborIDs returns the IDs bonded to id, sorted ascending. A self-loop lists id itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacency[id]), nil
}

// Neighbors returns the edges incident to id, ordered by neighbour ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := sortedKeys(g.adjacency[id])
	out := make([]*Edge, 0, len(nbrs))
	for _, n := range nbrs {
		out = append(out, g.edges[g.adjacency[id][n]])
	}

	return out, nil
}

// AdjacencyList returns a snapshot vertex ID -> sorted neighbour IDs.
// Returned slices are freshly allocated.
//
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedKeys(g.adjacency[id])
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}
