// SPDX-License-Identifier: MIT
// File: matcher.go
// Role: seedable, lazy node-induced subgraph isomorphism search.
// Determinism:
//   - Residue atoms follow bfs.ConnectivityOrder and reference candidates are
//     tried in sorted ID order, so Iter yields mappings in a fixed order.
// Concurrency:
//   - A Matcher is read-only after construction; each Iter call owns its State.

package isomorph

import (
	"iter"

	"github.com/katalvlaran/molmatch/bfs"
	"github.com/katalvlaran/molmatch/core"
)

// Matcher enumerates embeddings of a residue graph into a reference graph.
// Both graphs must not be mutated while a Matcher is in use.
type Matcher struct {
	ref, res *core.Graph
	opts     Options

	order  []string          // residue IDs in connectivity order
	parent map[string]string // residue BFS-tree parent

	refIDs           []string
	refVert, resVert map[string]*core.Vertex
	refDeg, resDeg   map[string]int
	refNbr, resNbr   map[string][]string
	refAdj, resAdj   map[string]map[string]bool
}

// NewMatcher prepares a search of residue inside reference.
//
// Errors:
//   - ErrGraphNil if either graph is nil.
func NewMatcher(reference, residue *core.Graph, opts ...Option) (*Matcher, error) {
	if reference == nil || residue == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	walk, err := bfs.ConnectivityOrder(residue)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		ref:    reference,
		res:    residue,
		opts:   o,
		order:  walk.Order,
		parent: walk.Parent,
		refIDs: reference.Vertices(),
		refDeg: reference.Degrees(),
		resDeg: residue.Degrees(),
	}
	m.refVert, m.refNbr, m.refAdj = index(reference, m.refIDs)
	m.resVert, m.resNbr, m.resAdj = index(residue, walk.Order)

	return m, nil
}

func index(g *core.Graph, ids []string) (map[string]*core.Vertex, map[string][]string, map[string]map[string]bool) {
	verts := make(map[string]*core.Vertex, len(ids))
	nbrs := make(map[string][]string, len(ids))
	adj := make(map[string]map[string]bool, len(ids))
	for _, id := range ids {
		verts[id], _ = g.Vertex(id)
		nbrs[id], _ = g.NeighborIDs(id)
		adj[id] = make(map[string]bool, len(nbrs[id]))
		for _, n := range nbrs[id] {
			adj[id][n] = true
		}
	}

	return verts, nbrs, adj
}

// Iter lazily yields every mapping that extends seed (nil for none).
// Each yielded Mapping is owned by the caller. A seed that is itself not a
// valid partial embedding yields nothing.
func (m *Matcher) Iter(seed *State) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		st := NewState()
		if seed != nil {
			st = seed.Clone()
		}
		if !m.consistent(st) {
			m.opts.Logger.Debug("inconsistent seed", "seeded", st.Len())
			return
		}
		todo := make([]string, 0, len(m.order)-st.Len())
		for _, id := range m.order {
			if _, mapped := st.Reverse[id]; !mapped {
				todo = append(todo, id)
			}
		}
		m.opts.Logger.Debug("isomorphism search", "residue", len(m.order), "seeded", st.Len(), "open", len(todo))

		w := &walker{m: m, st: st, todo: todo, yield: yield}
		w.search(0)
	}
}

// All collects every mapping extending seed.
func (m *Matcher) All(seed *State) []Mapping {
	var out []Mapping
	for mp := range m.Iter(seed) {
		out = append(out, mp)
	}

	return out
}

// First returns the first mapping extending seed, if any.
func (m *Matcher) First(seed *State) (Mapping, bool) {
	for mp := range m.Iter(seed) {
		return mp, true
	}

	return nil, false
}

// consistent checks that every seeded pair is a valid partial embedding.
func (m *Matcher) consistent(st *State) bool {
	for ref, res := range st.Core {
		if m.refVert[ref] == nil || m.resVert[res] == nil || !m.admits(ref, res) {
			return false
		}
	}
	for r1, s1 := range st.Core {
		for r2, s2 := range st.Core {
			if r1 >= r2 {
				continue
			}
			bonded := m.refAdj[r1][r2]
			if bonded != m.resAdj[s1][s2] {
				return false
			}
			if bonded && !m.bondsMatch(r1, r2, s1, s2) {
				return false
			}
		}
	}

	return true
}

// admits applies the per-atom checks: degree bound and NodeMatch.
func (m *Matcher) admits(ref, res string) bool {
	if m.refDeg[ref] < m.resDeg[res] {
		return false
	}

	return m.opts.NodeMatch == nil || m.opts.NodeMatch(m.refVert[ref], m.resVert[res])
}

func (m *Matcher) bondsMatch(r1, r2, s1, s2 string) bool {
	if m.opts.EdgeMatch == nil {
		return true
	}
	e, err := m.ref.Edge(r1, r2)
	if err != nil {
		return false
	}
	f, err := m.res.Edge(s1, s2)
	if err != nil {
		return false
	}

	return m.opts.EdgeMatch(e, f)
}

// walker holds the state of one Iter run.
type walker struct {
	m     *Matcher
	st    *State
	todo  []string
	yield func(Mapping) bool
}

// search places todo[k:]. It reports false once the consumer stopped.
func (w *walker) search(k int) bool {
	if k == len(w.todo) {
		return w.yield(w.st.Mapping())
	}
	res := w.todo[k]
	for _, ref := range w.candidates(res) {
		if _, used := w.st.Core[ref]; used || !w.feasible(ref, res) {
			continue
		}
		w.st.add(ref, res)
		more := w.search(k + 1)
		w.st.remove(ref, res)
		if !more {
			return false
		}
	}

	return true
}

// candidates returns the reference neighbours of a mapped residue neighbour's
// image, preferring the BFS parent, or every reference atom for a fragment root.
func (w *walker) candidates(res string) []string {
	if p, ok := w.m.parent[res]; ok {
		if img, mapped := w.st.Reverse[p]; mapped {
			return w.m.refNbr[img]
		}
	}
	for _, n := range w.m.resNbr[res] {
		if img, mapped := w.st.Reverse[n]; mapped {
			return w.m.refNbr[img]
		}
	}

	return w.m.refIDs
}

// feasible checks ref↔res against every already mapped pair.
func (w *walker) feasible(ref, res string) bool {
	m := w.m
	if !m.admits(ref, res) {
		return false
	}
	for _, rn := range m.resNbr[res] {
		img, mapped := w.st.Reverse[rn]
		if !mapped {
			continue
		}
		if !m.refAdj[ref][img] || !m.bondsMatch(ref, img, res, rn) {
			return false
		}
	}
	for _, x := range m.refNbr[ref] {
		if r2, mapped := w.st.Core[x]; mapped && !m.resAdj[res][r2] {
			return false
		}
	}

	return true
}
