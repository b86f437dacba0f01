package isomorph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/core"
	"github.com/katalvlaran/molmatch/isomorph"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildMolecule(nil, cons...)
	require.NoError(t, err)

	return g
}

// atoms builds a graph from id→(element, name) and bonds.
func atoms(t *testing.T, table map[string][2]string, bonds ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, en := range table {
		require.NoError(t, g.AddAtom(id, core.Atom{Element: en[0], Name: en[1]}))
	}
	for _, b := range bonds {
		_, err := g.AddEdge(b[0], b[1], 0)
		require.NoError(t, err)
	}

	return g
}

// assertEmbedding checks that m is an injective, element-preserving,
// node-induced embedding covering every residue atom.
func assertEmbedding(t *testing.T, ref, res *core.Graph, m isomorph.Mapping) {
	t.Helper()
	require.Len(t, m, res.VertexCount())
	seen := map[string]bool{}
	for r, s := range m {
		assert.False(t, seen[s], "%s used twice", s)
		seen[s] = true
		rv, err := ref.Vertex(r)
		require.NoError(t, err)
		sv, err := res.Vertex(s)
		require.NoError(t, err)
		assert.Equal(t, rv.Atom.Element, sv.Atom.Element, "%s→%s", r, s)
	}
	for r1, s1 := range m {
		for r2, s2 := range m {
			if r1 < r2 {
				assert.Equal(t, ref.HasEdge(r1, r2), res.HasEdge(s1, s2), "%s-%s vs %s-%s", r1, r2, s1, s2)
			}
		}
	}
}
