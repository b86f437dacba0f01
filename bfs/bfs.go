// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: single-source walk, fragment sweep and connectivity order.
// Determinism:
//   - Neighbours come from core.Graph.NeighborIDs (sorted), fragments start at
//     the smallest unvisited ID.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/molmatch/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. visited survives across roots so a
// sweep reuses one walker for every fragment.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS walks g from startID.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, context
// errors, and OnVisit errors wrapped with the atom ID.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	return w.res, w.run(startID)
}

// Components returns the fragments of g, each in BFS order, sorted by their
// first (smallest) vertex ID.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		from := len(w.res.Order)
		if err := w.run(id); err != nil {
			return nil, err
		}
		frag := make([]string, len(w.res.Order)-from)
		copy(frag, w.res.Order[from:])
		out = append(out, frag)
	}

	return out, nil
}

// ConnectivityOrder sweeps every fragment of g and returns the combined Result:
// Order covers all vertices, Parent is set for every non-root vertex.
func ConnectivityOrder(g *core.Graph) (*Result, error) {
	w, err := newWalker(g, nil)
	if err != nil {
		return nil, err
	}
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		if err := w.run(id); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.VertexCount()

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}, nil
}

// run walks the fragment of root.
func (w *walker) run(root string) error {
	w.enqueue(root, 0, "")
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	// item was just dequeued, so the lookup cannot fail
	neighbors, _ := w.graph.NeighborIDs(item.id)
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}
}
