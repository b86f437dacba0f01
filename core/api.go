// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and summaries.

package core

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Weighted    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	Density     float64
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Density returns 2E / (V(V-1)) for the simple undirected graph, and 0 when V < 2.
//
// Complexity: O(1).
func (g *Graph) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return density(len(g.vertices), len(g.edges))
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &GraphStats{
		Weighted:    g.weighted,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		Density:     density(len(g.vertices), len(g.edges)),
	}
}

func density(n, m int) float64 {
	if n < 2 {
		return 0
	}

	return 2 * float64(m) / float64(n*(n-1))
}
