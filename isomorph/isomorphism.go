// SPDX-License-Identifier: MIT
// File: isomorphism.go
// Role: two-phase (heavy atoms, then leaves) residue embedding and ranking.

package isomorph

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/molmatch/core"
)

// Isomorphism returns the embeddings of residue into reference, best first.
//
// Atoms match on element. Heavy residue atoms (degree ≠ 1) are embedded first.
// Each heavy embedding is extended with residue leaves whose atom name picks
// exactly one unmapped leaf neighbour of the parent's image with the same
// element; ambiguous or unnamed leaves stay open. The extended mapping seeds a
// full search that keeps its first completion; an empty seed keeps them all.
//
// opts are passed to both searches after the element predicate, so
// WithNodeMatch replaces it.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrMissingAttribute if an atom of either graph has no element.
func Isomorphism(reference, residue *core.Graph, opts ...Option) ([]Mapping, error) {
	if reference == nil || residue == nil {
		return nil, ErrGraphNil
	}
	if err := core.RequireElements(reference); err != nil {
		return nil, fmt.Errorf("isomorph: reference: %w", err)
	}
	if err := core.RequireElements(residue); err != nil {
		return nil, fmt.Errorf("isomorph: residue: %w", err)
	}
	opts = append([]Option{WithNodeMatch(ElementMatch)}, opts...)
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	degs := residue.Degrees()
	var leaves []string
	for id, d := range degs {
		if d == 1 {
			leaves = append(leaves, id)
		}
	}
	sort.Strings(leaves)

	heavy, err := NewMatcher(reference, core.WithoutVertices(residue, leaves), opts...)
	if err != nil {
		return nil, err
	}
	full, err := NewMatcher(reference, residue, opts...)
	if err != nil {
		return nil, err
	}
	ext := newLeafExtender(reference, residue, leaves)

	var out []Mapping
	embeddings := heavy.All(nil)
	for _, emb := range embeddings {
		st, err := SeedState(emb)
		if err != nil {
			return nil, err
		}
		ext.extend(st)
		if st.Len() > 0 {
			if mp, ok := full.First(st); ok {
				out = append(out, mp)
			}
			continue
		}
		out = append(out, full.All(st)...)
	}
	o.Logger.Debug("isomorphism", "leaves", len(leaves), "heavy", len(embeddings), "matches", len(out))

	SortMatches(reference, residue, out)

	return out, nil
}

// leafExtender resolves residue leaves against reference leaves by atom name.
type leafExtender struct {
	ref, res *core.Graph
	leaves   []string
	refDeg   map[string]int
}

func newLeafExtender(reference, residue *core.Graph, leaves []string) *leafExtender {
	return &leafExtender{ref: reference, res: residue, leaves: leaves, refDeg: reference.Degrees()}
}

// extend adds every uniquely named leaf to st in place.
func (x *leafExtender) extend(st *State) {
	for _, leaf := range x.leaves {
		if _, done := st.Reverse[leaf]; done {
			continue
		}
		nbrs, err := x.res.NeighborIDs(leaf)
		if err != nil || len(nbrs) != 1 {
			continue
		}
		anchor, ok := st.Reverse[nbrs[0]]
		if !ok {
			continue
		}
		lv, _ := x.res.Vertex(leaf)
		name, named := lv.Attr(core.AttrAtomName)
		if !named {
			continue
		}

		target, ok := x.uniqueLeaf(anchor, name)
		if !ok {
			continue
		}
		if _, used := st.Core[target]; used {
			continue
		}
		tv, _ := x.ref.Vertex(target)
		if tv.Atom.Element != lv.Atom.Element {
			continue
		}
		st.add(target, leaf)
	}
}

// uniqueLeaf returns the only degree-1 neighbour of anchor named name.
func (x *leafExtender) uniqueLeaf(anchor string, name interface{}) (string, bool) {
	nbrs, _ := x.ref.NeighborIDs(anchor)
	found, count := "", 0
	for _, n := range nbrs {
		if x.refDeg[n] != 1 {
			continue
		}
		v, _ := x.ref.Vertex(n)
		if other, ok := v.Attr(core.AttrAtomName); ok && core.EqualValues(other, name) {
			found = n
			count++
		}
	}

	return found, count == 1
}

// RateMatch counts the pairs of m whose atom names agree. Two unnamed atoms agree.
func RateMatch(reference, residue *core.Graph, m Mapping) int {
	score := 0
	for refID, resID := range m {
		a, errA := reference.Vertex(refID)
		b, errB := residue.Vertex(resID)
		if errA != nil || errB != nil {
			continue
		}
		na, okA := a.Attr(core.AttrAtomName)
		nb, okB := b.Attr(core.AttrAtomName)
		if okA == okB && (!okA || core.EqualValues(na, nb)) {
			score++
		}
	}

	return score
}

// SortMatches orders ms by RateMatch, best first, keeping the search order of ties.
func SortMatches(reference, residue *core.Graph, ms []Mapping) {
	type scored struct {
		m     Mapping
		score int
	}
	rated := make([]scored, len(ms))
	for i, m := range ms {
		rated[i] = scored{m, RateMatch(reference, residue, m)}
	}
	slices.SortStableFunc(rated, func(a, b scored) int { return cmp.Compare(b.score, a.score) })
	for i, r := range rated {
		ms[i] = r.m
	}
}
