// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Vertex, Edge, options and sentinel errors.
//
// A Graph is undirected and simple: at most one edge per unordered vertex pair.
// Vertices carry a structured Atom attribute set plus an open Metadata side table;
// edges carry an optional Weight and their own Metadata.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMissingAttribute indicates a structurally required attribute is absent.
	ErrMissingAttribute = errors.New("core: missing attribute")

	// ErrMalformedValue indicates an attribute value cannot be used for a derivation.
	ErrMalformedValue = errors.New("core: malformed attribute value")

	// ErrUnknownAttribute indicates a named attribute received a value of the wrong Go type.
	ErrUnknownAttribute = errors.New("core: attribute value has wrong type")
)

// Vec3 is a cartesian position. Units are chosen by the producer; graphio stores nm.
type Vec3 [3]float64

// Atom is the structured attribute set of a vertex.
//
// String fields are unset when empty and Position is unset when nil.
// ResID and Charge are always considered present.
type Atom struct {
	Element  string
	Name     string
	ResName  string
	Chain    string
	ResID    int
	Charge   float64
	Position *Vec3
}

// Vertex represents an atom (or, in a quotient graph, a block of atoms).
//
// Metadata stores passthrough data that has no typed field in Atom.
// Induced subgraphs share it with their source; Clone copies it.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Atom holds the typed chemical attributes.
	Atom Atom

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an undirected bond between two vertices.
//
// From/To keep the insertion orientation only for display; adjacency is symmetric.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string

	// Weight is observed only when the Graph is weighted.
	Weight float64

	// Metadata stores edge attributes such as "distance" or "order".
	Metadata map[string]interface{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeMetadata stores key=value on the new edge.
func WithEdgeMetadata(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]interface{})
		}
		e.Metadata[key] = value
	}
}

// Graph is the core in-memory labeled graph.
//
// mu protects vertices, edges and adjacency. nextEdgeID is an atomic counter
// for unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for every edge.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
