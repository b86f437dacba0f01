// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildMolecule(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same options and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molmatch/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildMolecule creates an empty unweighted graph and applies all constructors
// in order. The first constructor error is wrapped with "BuildMolecule: %w"
// and returned; no partial graph is returned.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a failed core mutation.
//   - ErrTooFewAtoms, ErrEmptyElement from constructors.
func BuildMolecule(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildMolecule: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a second
// residue to a structure. Heavy atom numbering continues from the atoms g
// already holds.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
