// SPDX-License-Identifier: MIT
// File: rings.go
// Role: ring closures of a molecular graph via back-edge detection.
// Determinism:
//   - Roots and neighbours are visited in sorted ID order; rings are
//     canonicalized and sorted by signature.

package dfs

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/molmatch/core"
)

// ringWalker collects one ring per back edge.
type ringWalker struct {
	g     *core.Graph
	state map[string]int
	path  []string
	rings [][]string
}

// Rings returns one closed ring [v0, v1, ..., v0] per ring closure of g,
// sorted by signature. An acyclic graph yields nil.
//
// Errors:
//   - ErrGraphNil if g is nil.
func Rings(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &ringWalker{g: g, state: make(map[string]int, g.VertexCount())}
	for _, v := range g.Vertices() {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v, ""); err != nil {
			return nil, fmt.Errorf("dfs: Rings: %w", err)
		}
	}
	sort.Slice(w.rings, func(i, j int) bool {
		return signature(w.rings[i]) < signature(w.rings[j])
	})

	return w.rings, nil
}

func (w *ringWalker) visit(id, parent string) error {
	w.state[id] = Gray
	w.path = append(w.path, id)

	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return err
	}
	for _, nid := range nbrs {
		if nid == id || nid == parent {
			continue
		}
		switch w.state[nid] {
		case White:
			if err = w.visit(nid, id); err != nil {
				return err
			}
		case Gray:
			at := slices.Index(w.path, nid)
			w.rings = append(w.rings, canonical(w.path[at:]))
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.state[id] = Black

	return nil
}

// RingAtoms reports the atoms that belong to at least one ring.
func RingAtoms(g *core.Graph) (map[string]bool, error) {
	rings, err := Rings(g)
	if err != nil {
		return nil, err
	}
	in := make(map[string]bool)
	for _, r := range rings {
		for _, id := range r {
			in[id] = true
		}
	}

	return in, nil
}

// RingBonds reports the bonds that belong to at least one ring, keyed by the
// endpoint pair in ascending order.
func RingBonds(g *core.Graph) (map[[2]string]bool, error) {
	rings, err := Rings(g)
	if err != nil {
		return nil, err
	}
	in := make(map[[2]string]bool)
	for _, r := range rings {
		for i := 0; i+1 < len(r); i++ {
			in[bondKey(r[i], r[i+1])] = true
		}
	}

	return in, nil
}

func bondKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}

func signature(ring []string) string {
	return strings.Join(ring, ",")
}
