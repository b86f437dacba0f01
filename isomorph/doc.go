// Package isomorph embeds a residue graph into a reference graph.
//
// A Mapping sends reference vertex IDs to residue vertex IDs; it is a
// node-induced subgraph isomorphism: every residue atom is mapped, the mapping is
// injective, and two mapped reference atoms are bonded exactly when their residue
// images are bonded.
//
// Matcher is the generic search. It is backtracking over an explicit State that
// callers may seed with a partial mapping, and it produces mappings lazily:
//
//	m, _ := isomorph.NewMatcher(ref, res, isomorph.WithNodeMatch(isomorph.ElementMatch))
//	for mapping := range m.Iter(nil) {
//		...               // break stops the search
//	}
//
// Residue atoms are placed in breadth-first connectivity order (see package bfs),
// so every atom after the first of its fragment only tries the reference
// neighbours of its parent's image.
//
// Isomorphism is the two-phase chemistry search. Heavy atoms (degree ≠ 1) are
// embedded first; each heavy embedding is extended with the leaf atoms whose
// name identifies a unique reference leaf on the corresponding parent; the
// extended mapping then seeds one full search. Seeded searches keep only their
// first completion, which avoids enumerating the 3! (or 2^n) equivalent
// hydrogen permutations of methyl and methylene groups. Results are ranked by
// RateMatch, best first.
//
// Errors:
//
//	ErrGraphNil      - nil reference or residue graph.
//	ErrNotInjective  - a seed maps two reference atoms onto one residue atom.
//
// A missing element attribute is reported as core.ErrMissingAttribute.
// Finding no mapping is not an error.
package isomorph
