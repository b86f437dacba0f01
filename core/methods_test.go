// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexC1))
	assert.True(t, g.HasVertex(VertexC1))

	// idempotent
	require.NoError(t, g.AddVertex(VertexC1))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexC1))
	assert.False(t, g.HasVertex(VertexC1))
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := newEthanol(t)
	require.NoError(t, g.RemoveVertex(VertexC2))

	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(VertexC1, VertexC2))
	nbrs, err := g.NeighborIDs(VertexO1)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexH2}, nbrs)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexC1, 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexC1, VertexC2, 1.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge(VertexC1, VertexC1, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(VertexC1, VertexC2, 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	// the reverse orientation is the same bond
	_, err = g.AddEdge(VertexC2, VertexC1, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge(VertexC2, VertexC1))
	assert.True(t, g.HasVertex(VertexC2), "AddEdge creates missing endpoints")
}

func TestGraph_WeightedEdgesAndMetadata(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge(VertexC1, VertexO1, 2.5, core.WithEdgeMetadata("order", 2))
	require.NoError(t, err)

	e, err := g.Edge(VertexO1, VertexC1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Weight)
	assert.Equal(t, 2, e.Metadata["order"])

	w, ok := e.Attr(core.AttrWeight)
	assert.True(t, ok)
	assert.Equal(t, 2.5, w)
	assert.Equal(t, []string{"order", "weight"}, e.AttrNames())

	_, err = g.Edge(VertexC1, VertexX)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := newEthanol(t)
	e, err := g.Edge(VertexC1, VertexC2)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e.ID))
	assert.False(t, g.HasEdge(VertexC1, VertexC2))
	assert.ErrorIs(t, g.RemoveEdge(e.ID), core.ErrEdgeNotFound)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := newEthanol(t)

	assert.Equal(t, []string{VertexC1, VertexC2, VertexH1, VertexH2, VertexO1}, g.Vertices())

	nbrs, err := g.NeighborIDs(VertexC1)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexC2, VertexH1}, nbrs)

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, "e"+string(rune('1'+i)), e.ID)
	}

	inc, err := g.Neighbors(VertexC2)
	require.NoError(t, err)
	require.Len(t, inc, 2)
	assert.Equal(t, VertexC1, inc[0].From)
	assert.Equal(t, VertexO1, inc[1].To)

	_, err = g.NeighborIDs(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Degree(t *testing.T) {
	g := newEthanol(t)

	d, err := g.Degree(VertexC2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = g.Degree(VertexH1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = g.Degree(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, map[string]int{VertexC1: 2, VertexC2: 2, VertexO1: 2, VertexH1: 1, VertexH2: 1}, g.Degrees())

	lg := core.NewGraph(core.WithLoops())
	_, err = lg.AddEdge(VertexX, VertexX, 0)
	require.NoError(t, err)
	d, err = lg.Degree(VertexX)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "self-loop counts twice")
}

func TestGraph_DensityAndStats(t *testing.T) {
	assert.Zero(t, core.NewGraph().Density())

	g := newEthanol(t)
	// 4 edges among 5 atoms: 2*4 / (5*4)
	assert.InDelta(t, 0.4, g.Density(), 1e-12)

	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.False(t, st.Weighted)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := newEthanol(t)
	c := g.Clone()

	require.NoError(t, c.RemoveVertex(VertexO1))
	assert.True(t, g.HasVertex(VertexO1))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())

	// new edges continue the source's textual sequence
	eid, err := c.AddEdge(VertexC2, VertexH2, 0)
	require.NoError(t, err)
	assert.Equal(t, "e5", eid)

	empty := g.CloneEmpty()
	assert.Equal(t, 5, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Equal(t, 5, empty.VertexCount())
}

func TestGraph_CloneCopiesAttributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAtom("a", core.Atom{Element: "C", Position: &core.Vec3{1, 2, 3}}))
	src, err := g.Vertex("a")
	require.NoError(t, err)
	require.NoError(t, src.SetAttr("mass", 12.0))

	c := g.Clone()
	v, err := c.Vertex("a")
	require.NoError(t, err)
	require.NoError(t, v.SetAttr("mass", 13.0))
	v.Atom.Position[0] = 9

	m, _ := src.Attr("mass")
	assert.Equal(t, 12.0, m)
	assert.Equal(t, 1.0, src.Atom.Position[0])

	// induced views share metadata with their source
	view := core.InducedSubgraph(g, map[string]bool{"a": true})
	vv, err := view.Vertex("a")
	require.NoError(t, err)
	require.NoError(t, vv.SetAttr("mass", 14.0))
	m, _ = src.Attr("mass")
	assert.Equal(t, 14.0, m)
}

func TestInducedSubgraph(t *testing.T) {
	g := newEthanol(t)

	sub := core.InducedSubgraph(g, map[string]bool{VertexC1: true, VertexC2: true, VertexH1: true, VertexX: true})
	assert.Equal(t, []string{VertexC1, VertexC2, VertexH1}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())

	heavy := core.WithoutVertices(g, []string{VertexH1, VertexH2})
	assert.Equal(t, []string{VertexC1, VertexC2, VertexO1}, heavy.Vertices())
	assert.Equal(t, 2, heavy.EdgeCount())

	v, err := heavy.Vertex(VertexO1)
	require.NoError(t, err)
	assert.Equal(t, "O", v.Atom.Element, "atoms are carried over")
}
