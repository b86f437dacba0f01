package blockmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/blockmodel"
	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/core"
)

func TestBlockmodel_SumsCrossingWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"1", "3", 2.0}, {"2", "3", 1.0}, {"1", "2", 5.0}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("4"))

	q, err := blockmodel.Blockmodel(g, [][]string{{"1", "2"}, {"3", "4"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, q.Vertices())
	require.Equal(t, 1, q.EdgeCount())
	e, err := q.Edge("0", "1")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, e.Weight, 1e-12)
	assert.False(t, q.HasEdge("0", "0"))

	v, err := q.Vertex("0")
	require.NoError(t, err)
	n, _ := v.Attr(blockmodel.MetaNNodes)
	m, _ := v.Attr(blockmodel.MetaNEdges)
	d, _ := v.Attr(blockmodel.MetaDensity)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, m)
	assert.InDelta(t, 1.0, d, 1e-12)

	sub, ok := blockmodel.Block(v)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, sub.Vertices())

	v, err = q.Vertex("1")
	require.NoError(t, err)
	m, _ = v.Attr(blockmodel.MetaNEdges)
	assert.Equal(t, 0, m)
}

func TestBlockmodel_UnweightedCountsBonds(t *testing.T) {
	g, err := builder.BuildMolecule(nil, builder.Ring("C", 4))
	require.NoError(t, err)

	// two halves of the ring are joined by two bonds; hydrogens are uncovered
	q, err := blockmodel.Blockmodel(g, [][]string{{"C1", "C2"}, {"C3", "C4"}}, nil)
	require.NoError(t, err)
	e, err := q.Edge("0", "1")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, e.Weight, 1e-12)
	assert.Equal(t, 1, q.EdgeCount())
}

func TestBlockmodel_MetadataWeightOnUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("1", "3", 0, core.WithEdgeMetadata(core.AttrWeight, 2.0))
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("4"))

	q, err := blockmodel.Blockmodel(g, [][]string{{"1", "2"}, {"3", "4"}}, nil)
	require.NoError(t, err)
	e, err := q.Edge("0", "1")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, e.Weight, 1e-12)
}

func TestBlockmodel_NodeCountEqualsPartitions(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	q, err := blockmodel.Blockmodel(g, [][]string{{"a"}, {}, {"missing"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, q.VertexCount())
	assert.Equal(t, 0, q.EdgeCount())

	v, err := q.Vertex("1")
	require.NoError(t, err)
	n, _ := v.Attr(blockmodel.MetaNNodes)
	assert.Equal(t, 0, n)
}

func TestBlockmodel_Attributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	q, err := blockmodel.Blockmodel(g, [][]string{{"a"}, {"b"}}, map[string][]interface{}{
		core.AttrResName: {"ALA", "GLY"},
		core.AttrResID:   {1, 2},
		"mass":           {71.08, 57.05},
	})
	require.NoError(t, err)

	v, err := q.Vertex("1")
	require.NoError(t, err)
	assert.Equal(t, "GLY", v.Atom.ResName)
	assert.Equal(t, 2, v.Atom.ResID)
	assert.Equal(t, 57.05, v.Metadata["mass"])
}

func TestBlockmodel_Errors(t *testing.T) {
	_, err := blockmodel.Blockmodel(nil, nil, nil)
	assert.ErrorIs(t, err, blockmodel.ErrGraphNil)

	g := core.NewGraph()
	_, err = blockmodel.Blockmodel(g, [][]string{{"a"}, {"b"}}, map[string][]interface{}{"chain": {"A"}})
	assert.ErrorIs(t, err, blockmodel.ErrAttrLength)

	_, err = blockmodel.Blockmodel(g, [][]string{{"a"}}, map[string][]interface{}{core.AttrResID: {"one"}})
	assert.ErrorIs(t, err, core.ErrUnknownAttribute)
}

func TestPartition(t *testing.T) {
	g := core.NewGraph()
	for id, el := range map[string]string{"a": "C", "b": "O", "c": "C", "d": "N"} {
		require.NoError(t, g.AddAtom(id, core.Atom{Element: el}))
	}
	byElement := func(v *core.Vertex) string { return v.Atom.Element }

	assert.Equal(t, [][]string{{"a", "c"}, {"b"}, {"d"}}, blockmodel.Partition(g, byElement, nil))
	assert.Equal(t, [][]string{{"a", "c"}, {"d"}, {"b"}},
		blockmodel.Partition(g, byElement, func(x, y string) int {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}))
}

func TestResidueGraph(t *testing.T) {
	// dipeptide-like: residue 10 listed before 9 by ID but sorted by resid
	g := core.NewGraph()
	atoms := map[string]core.Atom{
		"a1": {Element: "N", Name: "N", ResName: "GLY", ResID: 10, Chain: "A"},
		"a2": {Element: "C", Name: "CA", ResName: "GLY", ResID: 10, Chain: "A"},
		"b1": {Element: "N", Name: "N", ResName: "ALA", ResID: 9, Chain: "A"},
		"b2": {Element: "C", Name: "C", ResName: "ALA", ResID: 9, Chain: "A"},
		"c1": {Element: "O", Name: "O", ResName: "SOL", ResID: 1, Chain: "B"},
	}
	for id, a := range atoms {
		require.NoError(t, g.AddAtom(id, a))
	}
	for _, b := range [][2]string{{"a1", "a2"}, {"b1", "b2"}, {"b2", "a1"}} {
		_, err := g.AddEdge(b[0], b[1], 0)
		require.NoError(t, err)
	}

	r, err := blockmodel.ResidueGraph(g)
	require.NoError(t, err)
	require.Equal(t, 3, r.VertexCount())

	want := []blockmodel.ResidueKey{
		{Chain: "A", ResID: 9, ResName: "ALA"},
		{Chain: "A", ResID: 10, ResName: "GLY"},
		{Chain: "B", ResID: 1, ResName: "SOL"},
	}
	for i, id := range r.Vertices() {
		v, err := r.Vertex(id)
		require.NoError(t, err)
		assert.Equal(t, want[i], blockmodel.ResidueKey{Chain: v.Atom.Chain, ResID: v.Atom.ResID, ResName: v.Atom.ResName})
		assert.Equal(t, want[i].ResName, v.Atom.Name)
	}
	assert.True(t, r.HasEdge("0", "1"))
	assert.Equal(t, 1, r.EdgeCount())

	empty, err := blockmodel.ResidueGraph(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.VertexCount())

	_, err = blockmodel.ResidueGraph(nil)
	assert.ErrorIs(t, err, blockmodel.ErrGraphNil)
}

func TestResidueKey_Compare(t *testing.T) {
	a := blockmodel.ResidueKey{Chain: "A", ResID: 2, ResName: "ALA"}
	assert.Equal(t, 0, a.Compare(a))
	assert.Negative(t, a.Compare(blockmodel.ResidueKey{Chain: "A", ResID: 10}))
	assert.Positive(t, a.Compare(blockmodel.ResidueKey{Chain: "A", ResID: 2, ResName: "AAA"}))
	assert.Negative(t, a.Compare(blockmodel.ResidueKey{Chain: "B"}))
}
