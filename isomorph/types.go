package isomorph

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/molmatch/core"
)

var (
	// ErrGraphNil is returned when the reference or residue graph is nil.
	ErrGraphNil = errors.New("isomorph: graph is nil")

	// ErrNotInjective indicates a seed with two reference atoms on one residue atom.
	ErrNotInjective = errors.New("isomorph: mapping is not injective")
)

// Mapping sends reference vertex IDs to residue vertex IDs.
type Mapping map[string]string

// NodeMatch decides whether a reference atom may host a residue atom.
type NodeMatch func(ref, res *core.Vertex) bool

// EdgeMatch decides whether a reference bond may host a residue bond.
type EdgeMatch func(ref, res *core.Edge) bool

// ElementMatch admits atoms with equal, non-empty elements.
func ElementMatch(ref, res *core.Vertex) bool {
	return ref.Atom.Element != "" && ref.Atom.Element == res.Atom.Element
}

// State is the partial mapping explored by a Matcher.
// Core and Reverse always mirror each other.
type State struct {
	// Core maps reference IDs to residue IDs.
	Core map[string]string

	// Reverse maps residue IDs to reference IDs.
	Reverse map[string]string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{Core: make(map[string]string), Reverse: make(map[string]string)}
}

// SeedState builds a State from a reference→residue mapping.
//
// Errors:
//   - ErrNotInjective if two reference atoms share a residue atom.
func SeedState(seed map[string]string) (*State, error) {
	s := NewState()
	for ref, res := range seed {
		if prev, dup := s.Reverse[res]; dup {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrNotInjective, prev, ref, res)
		}
		s.Core[ref] = res
		s.Reverse[res] = ref
	}

	return s, nil
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := &State{
		Core:    make(map[string]string, len(s.Core)),
		Reverse: make(map[string]string, len(s.Reverse)),
	}
	for k, v := range s.Core {
		c.Core[k] = v
	}
	for k, v := range s.Reverse {
		c.Reverse[k] = v
	}

	return c
}

// Len returns the number of mapped pairs.
func (s *State) Len() int { return len(s.Core) }

// Mapping returns a copy of Core.
func (s *State) Mapping() Mapping {
	m := make(Mapping, len(s.Core))
	for k, v := range s.Core {
		m[k] = v
	}

	return m
}

func (s *State) add(ref, res string) {
	s.Core[ref] = res
	s.Reverse[res] = ref
}

func (s *State) remove(ref, res string) {
	delete(s.Core, ref)
	delete(s.Reverse, res)
}

// Option configures a Matcher.
type Option func(*Options)

// Options holds matcher parameters.
type Options struct {
	// NodeMatch filters atom pairs; nil admits every pair.
	NodeMatch NodeMatch

	// EdgeMatch filters bond pairs; nil admits every pair.
	EdgeMatch EdgeMatch

	// Logger receives debug events. Never nil.
	Logger *log.Logger
}

// DefaultOptions returns structural matching with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithNodeMatch installs an atom predicate.
func WithNodeMatch(fn NodeMatch) Option {
	return func(o *Options) { o.NodeMatch = fn }
}

// WithEdgeMatch installs a bond predicate.
func WithEdgeMatch(fn EdgeMatch) Option {
	return func(o *Options) { o.EdgeMatch = fn }
}

// WithLogger routes search events to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
