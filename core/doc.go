// Package core provides the labeled molecular Graph consumed by every matcher
// in molmatch.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Vertices are atoms identified by a string ID; each carries a typed Atom
//     (element, atom name, residue name, chain, residue index, charge, position)
//     plus a Metadata side table for passthrough data.
//   - Edges are bonds; at most one per unordered pair. Weights are observed only
//     on weighted graphs (WithWeighted); loops only with WithLoops.
//   - Deterministic iteration: Vertices() and NeighborIDs() are sorted,
//     Edges() follows creation order.
//   - Views: InducedSubgraph and WithoutVertices build fresh graphs without
//     touching the source.
//
// Attributes are reachable by name through Vertex.Attr / Vertex.SetAttr, so
// categorical comparisons can select attributes ("element", "atomname", ...)
// without knowing whether they are typed fields or Metadata entries.
//
// Element completion:
//
//	AddElementAttr(g)   // element := first alphabetic rune of the atom name
//
// fails with ErrMissingAttribute (no atom name) or ErrMalformedValue (no letter),
// naming the offending vertex.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second bond between the same atoms
//	ErrMissingAttribute    – required attribute absent
//	ErrMalformedValue      – attribute present but unusable
//	ErrUnknownAttribute    – named attribute given a value of the wrong type
package core
