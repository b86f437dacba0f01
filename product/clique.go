// SPDX-License-Identifier: MIT
// File: clique.go
// Role: lazy maximal clique enumeration (Bron–Kerbosch with pivoting).
// Determinism:
//   - Candidates are expanded in ascending index order and the pivot is the
//     lowest index with the most candidate neighbours, so the sequence is
//     reproducible for a given Graph.

package product

import (
	"iter"
	"sort"
)

// MaximalCliques enumerates every maximal clique of g exactly once, as a lazy
// sequence of ascending node-index slices. Each yielded slice is owned by the
// caller. Breaking out of the range loop stops the search.
//
// The empty graph yields nothing; an isolated node yields a singleton clique.
//
// Complexity: O(3^(n/3)) worst case overall; memory O(n²/64) for the bitsets.
func MaximalCliques(g *Graph) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		n := g.Len()
		if n == 0 {
			return
		}
		w := &cliqueWalker{
			nbrs:  make([]bitset, n),
			yield: yield,
		}
		for i := 0; i < n; i++ {
			w.nbrs[i] = newBitset(n).or(g.adj[i])
		}
		w.expand(make([]int, 0, n), fullBitset(n), newBitset(n))
	}
}

// cliqueWalker holds the state shared by one enumeration.
type cliqueWalker struct {
	nbrs  []bitset
	yield func([]int) bool
}

// expand reports false once the consumer asked to stop.
func (w *cliqueWalker) expand(r []int, p, x bitset) bool {
	if p.empty() {
		if !x.empty() {
			return true
		}
		out := make([]int, len(r))
		copy(out, r)
		sort.Ints(out)

		return w.yield(out)
	}

	pivot, best := -1, -1
	for _, u := range p.or(x).members() {
		if c := p.and(w.nbrs[u]).count(); c > best {
			pivot, best = u, c
		}
	}

	for _, v := range p.andNot(w.nbrs[pivot]).members() {
		if !w.expand(append(r, v), p.and(w.nbrs[v]), x.and(w.nbrs[v])) {
			return false
		}
		p.clear(v)
		x.set(v)
	}

	return true
}
