package blockmodel

import "errors"

var (
	// ErrGraphNil is returned when the source graph is nil.
	ErrGraphNil = errors.New("blockmodel: graph is nil")

	// ErrAttrLength indicates an attribute list shorter than the partition list.
	ErrAttrLength = errors.New("blockmodel: attribute list shorter than partitions")
)

// Metadata keys set on every quotient node.
const (
	MetaGraph   = "graph"
	MetaNNodes  = "nnodes"
	MetaNEdges  = "nedges"
	MetaDensity = "density"
)
