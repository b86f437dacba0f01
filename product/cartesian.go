// SPDX-License-Identifier: MIT
// File: cartesian.go
// Role: categorical cartesian and modular products of two molecular graphs.
// Determinism:
//   - Product nodes are created in (sorted A IDs) × (sorted B IDs) order, so
//     indices and clique output are reproducible.

package product

import (
	"sort"

	"github.com/katalvlaran/molmatch/core"
)

// CategoricalCartesianProduct returns the product graph whose nodes are all
// attribute-compatible pairs (u in a, v in b). It has no edges.
//
// Every node stores Values for the union of attribute names of u and v; a side
// lacking the attribute contributes nil.
//
// Complexity: O(|A|·|B|·k) for k = len(attrs).
func CategoricalCartesianProduct(a, b *core.Graph, attrs []string) *Graph {
	g := NewGraph()
	idsA, idsB := a.Vertices(), b.Vertices()
	vsB := make([]*core.Vertex, len(idsB))
	for j, id := range idsB {
		vsB[j], _ = b.Vertex(id)
	}

	for _, ida := range idsA {
		va, _ := a.Vertex(ida)
		for j, vb := range vsB {
			if !Compatible(va, vb, attrs) {
				continue
			}
			i := g.AddNode(Pair{Left: ida, Right: idsB[j]})
			g.nodeAttrs[i] = pairVertexAttrs(va, vb)
		}
	}

	return g
}

// CategoricalModularProduct returns the cartesian product of a and b joined by
// modular-product edges (see ConnectModular). An edge whose two source bonds
// both exist stores their paired bond attributes.
//
// Complexity: O(|A|·|B|·k + P²) for P product nodes.
func CategoricalModularProduct(a, b *core.Graph, attrs []string) *Graph {
	g := CategoricalCartesianProduct(a, b, attrs)
	connect(g, a, b, true)

	return g
}

// ConnectModular joins every pair of nodes (a1,b1), (a2,b2) of g with a1≠a2,
// b1≠b2 whose bond a1–a2 exists in a exactly when b1–b2 exists in b.
// No edge attributes are stored.
//
// Complexity: O(P²).
func ConnectModular(g *Graph, a, b *core.Graph) {
	connect(g, a, b, false)
}

func connect(g *Graph, a, b *core.Graph, withAttrs bool) {
	n := g.Len()
	for i := 0; i < n; i++ {
		pi := g.nodes[i]
		for j := i + 1; j < n; j++ {
			pj := g.nodes[j]
			if pi.Left == pj.Left || pi.Right == pj.Right {
				continue
			}
			inA := a.HasEdge(pi.Left, pj.Left)
			inB := b.HasEdge(pi.Right, pj.Right)
			if inA != inB {
				continue
			}
			g.AddEdge(i, j)
			if withAttrs && inA {
				ea, errA := a.Edge(pi.Left, pj.Left)
				eb, errB := b.Edge(pi.Right, pj.Right)
				if errA == nil && errB == nil {
					g.edgeAttrs[edgeKey(i, j)] = pairEdgeAttrs(ea, eb)
				}
			}
		}
	}
}

func pairVertexAttrs(u, v *core.Vertex) map[string]Values {
	out := make(map[string]Values)
	for _, name := range unionNames(u.AttrNames(), v.AttrNames()) {
		out[name] = Values{Left: present(u.Attr(name)), Right: present(v.Attr(name))}
	}

	return out
}

func pairEdgeAttrs(e, f *core.Edge) map[string]Values {
	out := make(map[string]Values)
	for _, name := range unionNames(e.AttrNames(), f.AttrNames()) {
		out[name] = Values{Left: present(e.Attr(name)), Right: present(f.Attr(name))}
	}

	return out
}

// present maps an absent attribute to nil.
func present(val interface{}, ok bool) interface{} {
	if !ok {
		return nil
	}

	return val
}

func unionNames(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	sort.Strings(out)

	return out
}
