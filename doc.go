// Package molmatch finds which atoms of one molecular graph correspond to which
// atoms of another: residue templates against atomistic structures, or any two
// labeled molecules against each other.
//
// 🚀 What is molmatch?
//
//	A deterministic, single-threaded matching engine that brings together:
//		• Labeled molecular graphs with typed atom attributes (core)
//		• Categorical cartesian / modular product graphs and lazy Bron–Kerbosch (product)
//		• Maximum common subgraph, exact and degree-aware two-phase (mcs)
//		• Element- and hydrogen-aware subgraph isomorphism with ranking (isomorph)
//		• Residue graphs and general graph quotients (blockmodel)
//		• Traversals: BFS connectivity order and fragments, DFS ring closures (bfs, dfs)
//		• YAML / MessagePack documents and a PDB reader (graphio)
//
// ✨ Why two-phase matching?
//
//   - Hydrogens and other leaf atoms are interchangeable by structure alone;
//     matching them naively multiplies every result by the permutations of
//     each leaf group.
//   - molmatch matches the heavy skeleton first and then places leaves by
//     their anchor (and, for isomorphism, by unique atom names), so a methyl
//     group on ethane yields 2 results instead of 2·3!.
//
// Layout:
//
//	core/          Graph, Vertex (Atom), Edge, element completion, induced views
//	product/       product graphs and maximal clique enumeration
//	mcs/           maximum common subgraph
//	isomorph/      explicit-state matcher, Isomorphism, RateMatch, SortMatches
//	blockmodel/    Blockmodel, ResidueGraph, Partition
//	bfs/, dfs/     traversals, fragments, rings
//	builder/       deterministic molecular fixtures (chains, rings, methyl, ethane)
//	graphio/       file formats
//	config/        TOML run configuration
//	cmd/molmatch   command-line front end
//
// Quick ASCII example (methyl in ethane):
//
//	    H11   H21           H11
//	     │     │             │
//	H12─C1────C2─H22   ⊇   H12─C1
//	     │     │             │
//	    H13   H23           H13
//
//	go install github.com/katalvlaran/molmatch/cmd/molmatch@latest
package molmatch
