package product_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/core"
	"github.com/katalvlaran/molmatch/product"
)

var byElement = []string{core.AttrElement}

func TestCartesian_CompatiblePairsOnly(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "O1": "O"}, [][2]string{{"C1", "O1"}})
	b := molecule(t, map[string]string{"Ca": "C", "Ob": "O", "Cc": "C"}, [][2]string{{"Ca", "Ob"}, {"Ob", "Cc"}})

	g := product.CategoricalCartesianProduct(a, b, byElement)
	assert.Equal(t, []product.Pair{
		{Left: "C1", Right: "Ca"},
		{Left: "C1", Right: "Cc"},
		{Left: "O1", Right: "Ob"},
	}, g.Nodes())
	assert.Equal(t, 0, g.EdgeCount())

	i, ok := g.Index(product.Pair{Left: "O1", Right: "Ob"})
	require.True(t, ok)
	assert.Equal(t, product.Values{Left: "O", Right: "O"}, g.NodeAttrs(i)[core.AttrElement])
}

func TestCartesian_AttributeUnionKeepsAbsentSides(t *testing.T) {
	a := core.NewGraph()
	require.NoError(t, a.AddAtom("C1", core.Atom{Element: "C", Name: "CA"}))
	b := core.NewGraph()
	require.NoError(t, b.AddAtom("Ca", core.Atom{Element: "C"}))

	g := product.CategoricalCartesianProduct(a, b, byElement)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, product.Values{Left: "CA", Right: nil}, g.NodeAttrs(0)[core.AttrAtomName])
	assert.Equal(t, product.Values{Left: 0, Right: 0}, g.NodeAttrs(0)[core.AttrResID])
}

func TestCartesian_EmptySelectorAdmitsAll(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "O1": "O"}, nil)
	b := molecule(t, map[string]string{"N1": "N", "S1": "S", "P1": "P"}, nil)

	assert.Equal(t, 6, product.CategoricalCartesianProduct(a, b, nil).Len())
}

func TestCartesian_MissingAttributeExcludes(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C"}, nil)
	b := molecule(t, map[string]string{"C1": "C"}, nil)

	// neither side carries an atom name
	assert.Equal(t, 0, product.CategoricalCartesianProduct(a, b, []string{core.AttrAtomName}).Len())
}

func TestModular_XNOREdges(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "C2": "C"}, [][2]string{{"C1", "C2"}}, core.WithEdgeMetadata("order", 1))
	b := molecule(t, map[string]string{"Ca": "C", "Cb": "C"}, [][2]string{{"Ca", "Cb"}}, core.WithEdgeMetadata("order", 2))

	g := product.CategoricalModularProduct(a, b, byElement)
	require.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.EdgeCount())

	idx := func(l, r string) int {
		i, ok := g.Index(product.Pair{Left: l, Right: r})
		require.True(t, ok)
		return i
	}
	assert.True(t, g.HasEdge(idx("C1", "Ca"), idx("C2", "Cb")))
	assert.True(t, g.HasEdge(idx("C1", "Cb"), idx("C2", "Ca")))
	// shared endpoint never joins
	assert.False(t, g.HasEdge(idx("C1", "Ca"), idx("C1", "Cb")))
	assert.False(t, g.HasEdge(idx("C1", "Ca"), idx("C2", "Ca")))

	attrs := g.EdgeAttrs(idx("C2", "Cb"), idx("C1", "Ca"))
	assert.Equal(t, product.Values{Left: 1, Right: 2}, attrs["order"])
}

func TestModular_BothUnbondedJoinWithoutAttrs(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "C2": "C"}, nil)
	b := molecule(t, map[string]string{"Ca": "C", "Cb": "C"}, nil)

	g := product.CategoricalModularProduct(a, b, byElement)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Nil(t, g.EdgeAttrs(0, 3))
}

func TestModular_MixedBondingRejected(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "C2": "C"}, [][2]string{{"C1", "C2"}})
	b := molecule(t, map[string]string{"Ca": "C", "Cb": "C"}, nil)

	assert.Equal(t, 0, product.CategoricalModularProduct(a, b, byElement).EdgeCount())
}

func TestConnectModular_SeededNodes(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "C2": "C", "C3": "C"}, [][2]string{{"C1", "C2"}, {"C2", "C3"}})
	b := molecule(t, map[string]string{"Ca": "C", "Cb": "C"}, [][2]string{{"Ca", "Cb"}})

	g := product.NewGraph()
	i := g.AddNode(product.Pair{Left: "C1", Right: "Ca"})
	j := g.AddNode(product.Pair{Left: "C2", Right: "Cb"})
	k := g.AddNode(product.Pair{Left: "C3", Right: "Ca"})
	assert.Equal(t, i, g.AddNode(product.Pair{Left: "C1", Right: "Ca"}), "AddNode is idempotent")

	product.ConnectModular(g, a, b)
	assert.True(t, g.HasEdge(i, j))
	assert.True(t, g.HasEdge(j, k))
	assert.False(t, g.HasEdge(i, k))
	assert.Nil(t, g.EdgeAttrs(i, j))
}

func TestGraph_AddEdgeIgnoresLoopsAndDuplicates(t *testing.T) {
	g := product.NewGraph()
	i := g.AddNode(product.Pair{Left: "a", Right: "b"})
	j := g.AddNode(product.Pair{Left: "c", Right: "d"})
	g.AddEdge(i, i)
	g.AddEdge(i, j)
	g.AddEdge(j, i)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{j}, g.Neighbors(i))
	assert.False(t, g.HasEdge(i, 7))
}

func collect(g *product.Graph) [][]int {
	var out [][]int
	for c := range product.MaximalCliques(g) {
		out = append(out, c)
	}

	return out
}

func TestMaximalCliques_Basic(t *testing.T) {
	// 0-1-2 triangle, 2-3 bridge, 4 isolated
	g := product.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddNode(product.Pair{Left: fmt.Sprint(i), Right: fmt.Sprint(i)})
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}} {
		g.AddEdge(e[0], e[1])
	}

	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {2, 3}, {4}}, collect(g))
}

func TestMaximalCliques_EmptyGraph(t *testing.T) {
	assert.Empty(t, collect(product.NewGraph()))
}

func TestMaximalCliques_EarlyStop(t *testing.T) {
	g := product.NewGraph()
	for i := 0; i < 6; i++ {
		g.AddNode(product.Pair{Left: fmt.Sprint(i)})
	}
	n := 0
	for range product.MaximalCliques(g) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestMaximalCliques_EachOnceAndMaximal(t *testing.T) {
	ring := func(prefix string) *core.Graph {
		atoms := map[string]string{}
		var bonds [][2]string
		for i := 0; i < 5; i++ {
			atoms[fmt.Sprintf("%s%d", prefix, i)] = "C"
			bonds = append(bonds, [2]string{fmt.Sprintf("%s%d", prefix, i), fmt.Sprintf("%s%d", prefix, (i+1)%5)})
		}
		return molecule(t, atoms, bonds)
	}
	g := product.CategoricalModularProduct(ring("a"), ring("b"), byElement)

	seen := map[string]bool{}
	largest := 0
	for c := range product.MaximalCliques(g) {
		key := fmt.Sprint(c)
		assert.False(t, seen[key], "clique %v produced twice", c)
		seen[key] = true

		for x := 0; x < len(c); x++ {
			for y := x + 1; y < len(c); y++ {
				require.True(t, g.HasEdge(c[x], c[y]))
			}
		}
		// no outside node extends the clique
		for v := 0; v < g.Len(); v++ {
			extends := true
			for _, u := range c {
				if u == v || !g.HasEdge(u, v) {
					extends = false
					break
				}
			}
			assert.False(t, extends, "clique %v is not maximal (node %d)", c, v)
		}
		if len(c) > largest {
			largest = len(c)
		}
	}
	// the full ring maps onto itself
	assert.Equal(t, 5, largest)
}

func TestCliqueMapping(t *testing.T) {
	a := molecule(t, map[string]string{"C1": "C", "C2": "C"}, [][2]string{{"C1", "C2"}})
	b := molecule(t, map[string]string{"Ca": "C", "Cb": "C"}, [][2]string{{"Ca", "Cb"}})
	g := product.CategoricalModularProduct(a, b, byElement)

	var got []map[string]string
	for c := range product.MaximalCliques(g) {
		got = append(got, product.CliqueMapping(g, c))
	}
	assert.ElementsMatch(t, []map[string]string{
		{"C1": "Ca", "C2": "Cb"},
		{"C1": "Cb", "C2": "Ca"},
	}, got)
}

func TestPairs_Sorted(t *testing.T) {
	g := product.NewGraph()
	g.AddNode(product.Pair{Left: "b", Right: "1"})
	g.AddNode(product.Pair{Left: "a", Right: "2"})
	g.AddNode(product.Pair{Left: "a", Right: "1"})

	ps := g.Pairs([]int{0, 1, 2})
	assert.True(t, sort.SliceIsSorted(ps, func(i, j int) bool {
		return ps[i].Left < ps[j].Left || (ps[i].Left == ps[j].Left && ps[i].Right < ps[j].Right)
	}))
	assert.Equal(t, product.Pair{Left: "a", Right: "1"}, ps[0])
}
