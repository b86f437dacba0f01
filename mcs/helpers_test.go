package mcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/core"
)

// molecule builds an unweighted graph from id→element and bond pairs.
func molecule(t *testing.T, atoms map[string]string, bonds ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, el := range atoms {
		require.NoError(t, g.AddAtom(id, core.Atom{Element: el, Name: id}))
	}
	for _, b := range bonds {
		_, err := g.AddEdge(b[0], b[1], 0)
		require.NoError(t, err)
	}

	return g
}

func water(t *testing.T) *core.Graph {
	return molecule(t, map[string]string{"O": "O", "H1": "H", "H2": "H"}, [2]string{"O", "H1"}, [2]string{"O", "H2"})
}

// splitLeaves is the two-phase corner case: the heavy clique {X1:X2, Y1:Y2}
// is the only maximal one, but Y1's hydrogens have partners hanging off W2.
//
//	A:  N1a─X1─N1b    H1─Y1─H2
//	B:  N2a─X2─N2b    S2a─Y2─S2b    Hb1─W2─Hb2
func splitLeaves(t *testing.T) (a, b *core.Graph) {
	a = molecule(t,
		map[string]string{"X1": "C", "N1a": "N", "N1b": "N", "Y1": "O", "H1": "H", "H2": "H"},
		[2]string{"X1", "N1a"}, [2]string{"X1", "N1b"}, [2]string{"Y1", "H1"}, [2]string{"Y1", "H2"})
	b = molecule(t,
		map[string]string{
			"X2": "C", "N2a": "N", "N2b": "N",
			"Y2": "O", "S2a": "S", "S2b": "S",
			"W2": "P", "Hb1": "H", "Hb2": "H",
		},
		[2]string{"X2", "N2a"}, [2]string{"X2", "N2b"},
		[2]string{"Y2", "S2a"}, [2]string{"Y2", "S2b"},
		[2]string{"W2", "Hb1"}, [2]string{"W2", "Hb2"})

	return a, b
}
