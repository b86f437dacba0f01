// Package product builds categorical product graphs of two labeled molecular
// graphs and enumerates their maximal cliques.
//
// A product node is a Pair (node of A, node of B) admitted only when every
// selected attribute is present on both atoms and equal. Two product nodes
// (a1,b1) and (a2,b2) are joined in the modular product when a1≠a2, b1≠b2 and
// the bond a1–a2 exists exactly when the bond b1–b2 exists (XNOR):
//
//	A:  C1─C2       B:  Ca─Cb
//
//	(C1,Ca)───(C2,Cb)      both bonded
//	(C1,Cb)───(C2,Ca)      both bonded
//
// Every clique of the modular product is a common induced subgraph of A and B,
// so maximum common subgraph search reduces to clique search. MaximalCliques
// enumerates cliques lazily (Bron–Kerbosch with pivoting) as an iter.Seq, so
// callers can stop after the first result without paying for the rest.
//
// Complexity:
//
//   - CategoricalCartesianProduct: O(|A|·|B|·k) for k selected attributes.
//   - CategoricalModularProduct:   O(P²) for P product nodes.
//   - MaximalCliques:              O(3^(P/3)) worst case, produced on demand.
package product
