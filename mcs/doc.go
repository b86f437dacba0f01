// Package mcs finds maximum common subgraphs of two labeled molecular graphs.
//
// Two strategies are offered:
//
//   - CategoricalMaximumCommonSubgraph builds the full categorical modular
//     product and keeps every maximum-size maximal clique. Exact, but the
//     product grows with |A|·|B| and leaf-heavy molecules (many equivalent
//     hydrogens) produce a combinatorial number of equivalent cliques.
//
//   - MaximumCommonSubgraph runs in two phases. Phase one matches the heavy
//     atoms only (degree ≠ 1 on both sides); phase two re-runs clique search
//     once per heavy clique (plus an empty one) on a small product seeded with
//     that clique and extended with leaf pairs whose anchoring neighbour agrees.
//
// The two-phase search is an approximation: a leaf pair rejected because its
// anchor was mapped by the seed stays rejected even when the final clique drops
// that anchor, so the result can be smaller than the categorical one.
//
// Attributes are selected by name (see core.Vertex.Attr); an empty selector
// compares connectivity only.
//
// Results are Match values (graph A vertex → graph B vertex), deduplicated and
// ordered by their sorted pair lists so output is reproducible.
package mcs
