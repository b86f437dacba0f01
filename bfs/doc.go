// Package bfs walks molecular graphs breadth-first.
//
// BFS explores the bonds of one fragment from a start atom and reports the visit
// Order, hop Depth and BFS-tree Parent of every reached atom. Components and
// ConnectivityOrder sweep every fragment of a graph: fragments are started from
// their smallest unvisited vertex ID, so the output is reproducible.
//
// The isomorphism search visits residue atoms in ConnectivityOrder: each atom
// after the first of its fragment has a Parent that was placed earlier, which
// restricts its candidates to the neighbours of the parent's image.
//
// Bond weights are ignored; every bond is one hop.
//
// Options:
//
//   - WithContext(ctx):        cancellation, checked once per dequeued atom.
//   - WithMaxDepth(d):         stop expanding beyond d hops (d > 0); d < 0 is rejected.
//   - WithFilterNeighbor(fn):  skip bonds for which fn(curr, nbr) is false.
//   - WithOnVisit(fn):         hook per visited atom; an error aborts the walk.
//
// Errors:
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start atom absent.
//   - ErrOptionViolation      invalid option (negative depth).
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
