// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_ring.go - rings and the methyl group.
//
// Contract:
//   - Ring: n ≥ 3 heavy atoms, bonds i→(i+1)%n in ascending i, then one
//     hydrogen per ring atom (aromatic CH).
//   - Methyl: one carbon with three hydrogens; the carbon keeps a free valence.
//
// Complexity: O(n) atoms and bonds.

package builder

import (
	"github.com/katalvlaran/molmatch/core"
)

const (
	methodRing   = "Ring"
	methodMethyl = "Methyl"

	minRingAtoms = 3
	methylH      = 3
)

// Ring returns a Constructor for an n-membered ring of element.
func Ring(element string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if element == "" {
			return builderErrorf(methodRing, "%w", ErrEmptyElement)
		}
		if n < minRingAtoms {
			return builderErrorf(methodRing, "n=%d < min=%d: %w", n, minRingAtoms, ErrTooFewAtoms)
		}

		base := heavyCount(g)
		ids := make([]string, n)
		for i := range ids {
			id, err := addHeavy(g, cfg, element, base+i+1)
			if err != nil {
				return builderErrorf(methodRing, "%w", err)
			}
			ids[i] = id
		}
		for i := 0; i < n; i++ {
			if err := bond(g, ids[i], ids[(i+1)%n]); err != nil {
				return builderErrorf(methodRing, "%w", err)
			}
		}
		for i, id := range ids {
			if err := addHydrogens(g, cfg, id, base+i+1, 1); err != nil {
				return builderErrorf(methodRing, "%w", err)
			}
		}

		return nil
	}
}

// Methyl returns a Constructor for a CH3 group.
func Methyl() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		i := heavyCount(g) + 1
		id, err := addHeavy(g, cfg, "C", i)
		if err != nil {
			return builderErrorf(methodMethyl, "%w", err)
		}
		if err := addHydrogens(g, cfg, id, i, methylH); err != nil {
			return builderErrorf(methodMethyl, "%w", err)
		}

		return nil
	}
}
