// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// atoms.go - shared atom/hydrogen emission used by every constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molmatch/core"
)

// hydrogen is the element symbol of implicit hydrogens.
const hydrogen = "H"

// valence is the saturation bond count used to place implicit hydrogens.
var valence = map[string]int{
	"H": 1,
	"C": 4,
	"N": 3,
	"O": 2,
	"S": 2,
	"P": 3,
}

// heavyCount returns the number of non-hydrogen atoms already in g.
func heavyCount(g *core.Graph) int {
	n := 0
	for _, id := range g.Vertices() {
		if v, err := g.Vertex(id); err == nil && v.Atom.Element != hydrogen {
			n++
		}
	}

	return n
}

// addAtom inserts one atom and returns its vertex ID.
func addAtom(g *core.Graph, cfg builderConfig, name, element string) (string, error) {
	id := name
	if cfg.idFn != nil {
		id = cfg.idFn(g.VertexCount())
	}
	atom := core.Atom{
		Element: element,
		Name:    name,
		ResName: cfg.resName,
		ResID:   cfg.resID,
		Chain:   cfg.chain,
	}
	if g.HasVertex(id) {
		return "", fmt.Errorf("atom %q: duplicate vertex ID %q: %w", name, id, ErrConstructFailed)
	}
	if err := g.AddAtom(id, atom); err != nil {
		return "", fmt.Errorf("atom %q: %v: %w", name, err, ErrConstructFailed)
	}

	return id, nil
}

// addHeavy inserts heavy atom number i (1-based) of element.
func addHeavy(g *core.Graph, cfg builderConfig, element string, i int) (string, error) {
	return addAtom(g, cfg, fmt.Sprintf("%s%d", element, i), element)
}

// addHydrogens bonds count hydrogens named H<i><k> to parent.
func addHydrogens(g *core.Graph, cfg builderConfig, parent string, i, count int) error {
	if !cfg.hydrogens {
		return nil
	}
	for k := 1; k <= count; k++ {
		id, err := addAtom(g, cfg, fmt.Sprintf("%s%d%d", hydrogen, i, k), hydrogen)
		if err != nil {
			return err
		}
		if err := bond(g, parent, id); err != nil {
			return err
		}
	}

	return nil
}

func bond(g *core.Graph, a, b string) error {
	if _, err := g.AddEdge(a, b, 0); err != nil {
		return fmt.Errorf("bond %s-%s: %v: %w", a, b, err, ErrConstructFailed)
	}

	return nil
}
