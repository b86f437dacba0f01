package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors of the bfs package.
var (
	// ErrStartVertexNotFound: the root atom is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: a nil molecule was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option received an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes one walk.
type Option func(*Options)

// Options holds parameters and callbacks of one walk.
type Options struct {
	// Ctx is polled once per dequeued atom.
	Ctx context.Context

	// OnVisit is called when visiting an atom. An error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor returning false leaves the bond curr-neighbor untraversed.
	FilterNeighbor func(curr, neighbor string) bool

	// err holds the first option violation; newWalker reports it.
	err error
}

// DefaultOptions walks every reachable atom under context.Background.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext lets ctx cancel the walk. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk beyond d hops. Zero means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	// Order lists atoms in visit sequence.
	Order []string

	// Depth maps each reached atom to its hop distance from its fragment root.
	Depth map[string]int

	// Parent maps each reached non-root atom to its BFS-tree predecessor.
	Parent map[string]string
}
