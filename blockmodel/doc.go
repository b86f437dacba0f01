// Package blockmodel collapses a molecular graph into a quotient graph with
// one node per block of atoms.
//
// Blockmodel is the general operation: given an ordered list of partitions it
// creates nodes "0", "1", ... each carrying the induced subgraph of its block
// (Metadata "graph") together with its size, bond count and density. Bonds that
// cross two blocks become a single weighted quotient edge whose weight is the
// sum of the crossing bond weights (1.0 per bond on unweighted sources).
// Partitions need not cover the graph: bonds touching an uncovered atom are
// dropped, as are bonds inside a block.
//
// ResidueGraph is the common special case of grouping atoms by
// (chain, resid, resname), which yields a residue-level view of a molecule:
//
//	ALA1 ──1.0── GLY2 ──1.0── SER3
//
// Partition is the grouping helper used by ResidueGraph; it is exported for
// callers that block atoms by some other key.
package blockmodel
