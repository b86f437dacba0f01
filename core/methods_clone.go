// File: methods_clone.go
// Role: copies of a molecule: full, bond-free and reset.
// Determinism:
//   - Copies keep vertex and edge IDs; the edge counter carries over so new
//     bonds on a copy continue the source's e<N> sequence.
// Concurrency:
//   - The source is read-locked while it is copied.

package core

import (
	"maps"
	"sync/atomic"
)

// copyAtom returns a with its own Position.
func copyAtom(a Atom) Atom {
	if a.Position != nil {
		p := *a.Position
		a.Position = &p
	}

	return a
}

// copyGraph builds a graph with g's flags holding the vertices accepted by keep.
// With bonds set, every edge between two kept vertices is copied as well.
// With deep set, atoms and metadata tables are duplicated instead of shared.
// Caller holds g.mu for reading.
func copyGraph(g *Graph, keep func(id string) bool, bonds, deep bool) *Graph {
	out := NewGraph(g.options()...)
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		if !keep(id) {
			continue
		}
		nv := &Vertex{ID: id, Atom: v.Atom, Metadata: v.Metadata}
		if deep {
			nv.Atom = copyAtom(v.Atom)
			nv.Metadata = maps.Clone(v.Metadata)
		}
		out.vertices[id] = nv
		out.adjacency[id] = make(map[string]string)
	}
	if !bonds {
		return out
	}
	for eid, e := range g.edges {
		if out.vertices[e.From] == nil || out.vertices[e.To] == nil {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Metadata: e.Metadata}
		if deep {
			ne.Metadata = maps.Clone(e.Metadata)
		}
		out.edges[eid] = ne
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}

	return out
}

func all(string) bool { return true }

// CloneEmpty returns the atoms of g without any bond. Atoms and metadata are
// copied, so the result can be annotated without touching g.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyGraph(g, all, false, true)
}

// Clone returns an independent copy of g: atoms, positions, metadata and
// bonds. SetAttr on the copy never shows through on g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyGraph(g, all, true, true)
}

// Clear drops every atom and bond but keeps the weighted/loops flags.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}

// options reports the GraphOptions g was built with. Caller holds g.mu.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
