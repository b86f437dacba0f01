// SPDX-License-Identifier: MIT
// File: blockmodel.go
// Role: quotient graph over an ordered list of partitions.
// Determinism:
//   - Node i is named strconv.Itoa(i); quotient edges are inserted in sorted
//     (block, block) order so edge IDs are reproducible.

package blockmodel

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/molmatch/core"
)

// Blockmodel returns the weighted quotient of g over partitions.
//
// attrs assigns per-block attributes positionally: block i receives
// attrs[name][i] through Vertex.SetAttr, so typed names (resname, chain, resid,
// atomname, ...) land in the Atom fields and others in Metadata.
// IDs in a partition that are absent from g are ignored. When an atom appears
// in several partitions the last one owns it for edge routing.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrAttrLength if some attrs list has fewer values than partitions.
//   - core.ErrUnknownAttribute if a typed attribute receives a wrong-typed value.
//
// Complexity: O(V + E + B·log B) for B blocks.
func Blockmodel(g *core.Graph, partitions [][]string, attrs map[string][]interface{}) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	names := make([]string, 0, len(attrs))
	for name, vals := range attrs {
		if len(vals) < len(partitions) {
			return nil, fmt.Errorf("%w: %q has %d values for %d partitions",
				ErrAttrLength, name, len(vals), len(partitions))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	q := core.NewGraph(core.WithWeighted())
	block := make(map[string]int)
	for i, ids := range partitions {
		keep := make(map[string]bool, len(ids))
		for _, id := range ids {
			keep[id] = true
		}
		sub := core.InducedSubgraph(g, keep)

		bid := strconv.Itoa(i)
		if err := q.AddVertex(bid); err != nil {
			return nil, err
		}
		v, _ := q.Vertex(bid)
		for _, name := range names {
			if err := v.SetAttr(name, attrs[name][i]); err != nil {
				return nil, err
			}
		}
		for _, kv := range []struct {
			key string
			val interface{}
		}{
			{MetaGraph, sub},
			{MetaNNodes, sub.VertexCount()},
			{MetaNEdges, sub.EdgeCount()},
			{MetaDensity, sub.Density()},
		} {
			if err := v.SetAttr(kv.key, kv.val); err != nil {
				return nil, err
			}
		}

		for _, id := range sub.Vertices() {
			block[id] = i
		}
	}

	sums := make(map[[2]int]float64)
	for _, e := range g.Edges() {
		bu, okU := block[e.From]
		bv, okV := block[e.To]
		if !okU || !okV || bu == bv {
			continue
		}
		if bu > bv {
			bu, bv = bv, bu
		}
		sums[[2]int{bu, bv}] += edgeWeight(e)
	}

	keys := make([][2]int, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, k := range keys {
		if _, err := q.AddEdge(strconv.Itoa(k[0]), strconv.Itoa(k[1]), sums[k]); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// Block returns the induced subgraph stored on a quotient node.
func Block(v *core.Vertex) (*core.Graph, bool) {
	raw, ok := v.Attr(MetaGraph)
	if !ok {
		return nil, false
	}
	sub, ok := raw.(*core.Graph)

	return sub, ok
}

// edgeWeight reads the "weight" attribute of e, which covers both Edge.Weight
// and a weight kept in edge metadata. Bonds without one weigh 1.
func edgeWeight(e *core.Edge) float64 {
	raw, ok := e.Attr(core.AttrWeight)
	if !ok {
		return 1.0
	}
	switch w := raw.(type) {
	case float64:
		return w
	case int:
		return float64(w)
	}

	return 1.0
}
