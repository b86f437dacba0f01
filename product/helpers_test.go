package product_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/core"
)

// molecule builds an unweighted graph from id→element and bond pairs.
func molecule(t testing.TB, atoms map[string]string, bonds [][2]string, opts ...core.EdgeOption) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, el := range atoms {
		require.NoError(t, g.AddAtom(id, core.Atom{Element: el}))
	}
	for _, b := range bonds {
		_, err := g.AddEdge(b[0], b[1], 0, opts...)
		require.NoError(t, err)
	}

	return g
}
