// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_chain.go - linear chains, single atoms and explicit bonds.
//
// Contract:
//   - Chain: n ≥ 1 heavy atoms bonded i–(i+1), then hydrogens per atom in index order.
//   - Hydrogen count = valence(element) - chain degree, never negative.
//
// Complexity: O(n) atoms and bonds.

package builder

import (
	"github.com/katalvlaran/molmatch/core"
)

const (
	methodChain = "Chain"
	methodAtom  = "Atom"
	methodBond  = "Bond"

	minChainAtoms = 1
)

// Chain returns a Constructor for a saturated linear chain of n atoms of element.
func Chain(element string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if element == "" {
			return builderErrorf(methodChain, "%w", ErrEmptyElement)
		}
		if n < minChainAtoms {
			return builderErrorf(methodChain, "n=%d < min=%d: %w", n, minChainAtoms, ErrTooFewAtoms)
		}

		base := heavyCount(g)
		ids := make([]string, n)
		for i := range ids {
			id, err := addHeavy(g, cfg, element, base+i+1)
			if err != nil {
				return builderErrorf(methodChain, "%w", err)
			}
			ids[i] = id
		}
		for i := 0; i+1 < n; i++ {
			if err := bond(g, ids[i], ids[i+1]); err != nil {
				return builderErrorf(methodChain, "%w", err)
			}
		}
		for i, id := range ids {
			deg := 2
			if i == 0 || i == n-1 {
				deg = 1
			}
			if n == 1 {
				deg = 0
			}
			if err := addHydrogens(g, cfg, id, base+i+1, max(valence[element]-deg, 0)); err != nil {
				return builderErrorf(methodChain, "%w", err)
			}
		}

		return nil
	}
}

// Ethane returns Chain("C", 2): two carbons with three hydrogens each.
func Ethane() Constructor {
	return Chain("C", 2)
}

// Atom returns a Constructor for one bare heavy atom.
func Atom(element string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if element == "" {
			return builderErrorf(methodAtom, "%w", ErrEmptyElement)
		}
		if _, err := addHeavy(g, cfg, element, heavyCount(g)+1); err != nil {
			return builderErrorf(methodAtom, "%w", err)
		}

		return nil
	}
}

// Bond returns a Constructor that bonds two existing atoms by vertex ID.
func Bond(a, b string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if !g.HasVertex(a) || !g.HasVertex(b) {
			return builderErrorf(methodBond, "%s-%s: %w: %w", a, b, core.ErrVertexNotFound, ErrConstructFailed)
		}
		if err := bond(g, a, b); err != nil {
			return builderErrorf(methodBond, "%w", err)
		}

		return nil
	}
}
