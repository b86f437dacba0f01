// Package dfs implements depth-first traversal and ring detection on a
// molecular core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each bond before backtracking.
//     Supports pre- and post-order hooks, cancellation via context.Context,
//     depth limiting, neighbour filtering and forest traversal.
//   - Rings: one ring per ring closure (back edge) found by a full DFS, i.e.
//     a cycle basis of the molecule. Each ring is returned in canonical form
//     (minimal rotation, smaller direction first) so output is stable.
//   - RingAtoms / RingBonds: membership tests derived from Rings.
//
// Rings yields exactly E − V + C rings for a graph with C fragments. Fused
// systems (naphthalene) therefore produce one ring per closure, not every
// simple cycle.
//
// Complexity:
//
//   - DFS:   Time O(V+E), Memory O(V)
//   - Rings: Time O(V+E + R·L) for R rings of average length L, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
