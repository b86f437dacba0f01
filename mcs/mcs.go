// SPDX-License-Identifier: MIT
// File: mcs.go
// Role: categorical and degree-aware maximum common subgraph search.
// Determinism:
//   - Product nodes follow sorted vertex IDs, clique enumeration is ordered,
//     and results are canonicalised by fromCliques.
// Concurrency:
//   - Read-only on both graphs; safe to run concurrently on shared inputs.

package mcs

import (
	"iter"

	"github.com/katalvlaran/molmatch/core"
	"github.com/katalvlaran/molmatch/product"
)

// CategoricalMaximumCommonSubgraph returns every maximum common induced
// subgraph of a and b, where paired atoms agree on all attrs.
// No compatible pair at all yields an empty result.
//
// Complexity: product construction O(P²), clique search exponential in P.
func CategoricalMaximumCommonSubgraph(a, b *core.Graph, attrs []string, opts ...Option) []Match {
	o := applyOptions(opts)
	g := product.CategoricalModularProduct(a, b, attrs)
	o.Logger.Debug("modular product", "nodes", g.Len(), "edges", g.EdgeCount())

	largest := Maxes(product.MaximalCliques(g), func(c []int) int { return len(c) })
	cliques := make([][]product.Pair, 0, len(largest))
	for _, c := range largest {
		cliques = append(cliques, g.Pairs(c))
	}
	out := fromCliques(cliques)
	o.Logger.Debug("categorical mcs", "matches", len(out), "size", matchSize(out))

	return out
}

// MaximumCommonSubgraph returns the largest common subgraphs found by the
// two-phase heavy/leaf search (see package doc for the approximation it makes).
//
// Phase one: product of attribute-compatible pairs with degree ≠ 1 on both
// sides, every maximal clique plus the empty clique. Phase two, per clique: a
// product seeded with the clique and extended by compatible pairs with degree
// ≤ 1 on at least one side whose graph-A neighbours are absent, unmapped, or
// mapped onto a graph-B neighbour of the candidate.
func MaximumCommonSubgraph(a, b *core.Graph, attrs []string, opts ...Option) []Match {
	o := applyOptions(opts)
	s := newTwoPhase(a, b, attrs)

	heavy := product.NewGraph()
	for _, ida := range s.idsA {
		if s.degA[ida] == 1 {
			continue
		}
		for _, idb := range s.idsB {
			if s.degB[idb] != 1 && product.Compatible(s.vA[ida], s.vB[idb], attrs) {
				heavy.AddNode(product.Pair{Left: ida, Right: idb})
			}
		}
	}
	product.ConnectModular(heavy, a, b)
	o.Logger.Debug("heavy product", "nodes", heavy.Len(), "edges", heavy.EdgeCount())

	seeds := 0
	var all iter.Seq[[]product.Pair] = func(yield func([]product.Pair) bool) {
		extend := func(seed []product.Pair) bool {
			seeds++
			g := s.leafProduct(seed)
			for c := range product.MaximalCliques(g) {
				if !yield(g.Pairs(c)) {
					return false
				}
			}
			return true
		}
		if !extend(nil) {
			return
		}
		for c := range product.MaximalCliques(heavy) {
			if !extend(heavy.Pairs(c)) {
				return
			}
		}
	}

	out := fromCliques(Maxes(all, func(ps []product.Pair) int { return len(ps) }))
	o.Logger.Debug("degree-aware mcs", "seeds", seeds, "matches", len(out), "size", matchSize(out))

	return out
}

// twoPhase caches per-graph lookups shared by every phase-two product.
type twoPhase struct {
	a, b       *core.Graph
	attrs      []string
	idsA, idsB []string
	vA, vB     map[string]*core.Vertex
	degA, degB map[string]int
	nbrA, nbrB map[string][]string
}

func newTwoPhase(a, b *core.Graph, attrs []string) *twoPhase {
	s := &twoPhase{
		a: a, b: b, attrs: attrs,
		idsA: a.Vertices(), idsB: b.Vertices(),
		degA: a.Degrees(), degB: b.Degrees(),
	}
	s.vA, s.nbrA = lookups(a, s.idsA)
	s.vB, s.nbrB = lookups(b, s.idsB)

	return s
}

func lookups(g *core.Graph, ids []string) (map[string]*core.Vertex, map[string][]string) {
	vs := make(map[string]*core.Vertex, len(ids))
	nbrs := make(map[string][]string, len(ids))
	for _, id := range ids {
		vs[id], _ = g.Vertex(id)
		nbrs[id], _ = g.NeighborIDs(id)
	}

	return vs, nbrs
}

// leafProduct builds the phase-two product for one heavy clique.
func (s *twoPhase) leafProduct(seed []product.Pair) *product.Graph {
	match := make(map[string]string, len(seed))
	g := product.NewGraph()
	for _, p := range seed {
		match[p.Left] = p.Right
		g.AddNode(p)
	}

	for _, ida := range s.idsA {
		for _, idb := range s.idsB {
			if s.degA[ida] > 1 && s.degB[idb] > 1 {
				continue
			}
			if !product.Compatible(s.vA[ida], s.vB[idb], s.attrs) {
				continue
			}
			if s.anchored(ida, idb, match) {
				g.AddNode(product.Pair{Left: ida, Right: idb})
			}
		}
	}
	product.ConnectModular(g, s.a, s.b)

	return g
}

// anchored reports whether ida's neighbours allow pairing ida with idb under match:
// ida has no neighbour, one of them is unmapped, or one maps onto a neighbour of idb.
func (s *twoPhase) anchored(ida, idb string, match map[string]string) bool {
	nA := s.nbrA[ida]
	if len(nA) == 0 {
		return true
	}
	images := make(map[string]struct{}, len(nA))
	for _, n := range nA {
		img, ok := match[n]
		if !ok {
			return true
		}
		images[img] = struct{}{}
	}
	for _, n := range s.nbrB[idb] {
		if _, ok := images[n]; ok {
			return true
		}
	}

	return false
}

func matchSize(ms []Match) int {
	if len(ms) == 0 {
		return 0
	}

	return len(ms[0])
}
