// Package builder assembles small, deterministic molecular graphs for tests,
// examples and the demo command.
//
// One orchestrator, BuildMolecule(bopts, cons...), creates an empty graph,
// resolves the BuilderOptions and applies each Constructor in order:
//
//	g, err := builder.BuildMolecule(
//		[]builder.BuilderOption{builder.WithResidue("ETH", 1)},
//		builder.Ethane(),
//	)
//
// Naming:
//
//   - Heavy atoms are named <element><i>, i counting heavy atoms of the whole
//     graph from 1 (C1, C2, O3, ...).
//   - Hydrogens are named H<i><k>, k counting the hydrogens of heavy atom i
//     from 1 (H11, H12, H13 on C1).
//   - Vertex IDs equal atom names unless WithIDScheme maps the n-th added
//     vertex (0-based) to another ID.
//
// Constructors:
//
//	Atom(element)        one heavy atom, no hydrogens
//	Chain(element, n)    linear chain saturated with hydrogens
//	Ring(element, n)     cycle with one hydrogen per ring atom
//	Methyl()             CH3 group (the carbon has degree 3)
//	Ethane()             Chain("C", 2)
//	Bond(a, b)           bond two atoms that already exist
//
// Hydrogens are skipped entirely with WithHydrogens(false).
//
// Errors:
//
//	ErrTooFewAtoms      - size below the constructor's minimum.
//	ErrEmptyElement     - element symbol is empty.
//	ErrConstructFailed  - nil constructor or a core mutation failed.
package builder
