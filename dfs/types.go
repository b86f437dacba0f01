package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal.
	OnVisit func(id string) error

	// OnExit is invoked after all descendants are explored (post-order).
	// Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth limits recursion when non-negative. 0 visits only the start.
	MaxDepth int

	// FilterNeighbor returns false to skip a neighbour.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited vertex in ID order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every fragment of the graph.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures a traversal.
type Result struct {
	// Order lists vertices in finishing (post-order) sequence.
	Order []string

	// Depth is the tree depth of each visited vertex.
	Depth map[string]int

	// Parent is the discovering vertex; roots are absent.
	Parent map[string]string

	// Visited flags reached vertices.
	Visited map[string]bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}
