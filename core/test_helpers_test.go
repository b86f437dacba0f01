// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for molmatch/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexC1 = "C1"
	VertexC2 = "C2"
	VertexO1 = "O1"
	VertexH1 = "H1"
	VertexH2 = "H2"
	VertexX  = "X"
)

// newEthanol builds C1-C2-O1 with one hydrogen on O1 and a named hydrogen on C1.
//
//	H1        H2
//	|         |
//	C1 - C2 - O1
func newEthanol(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, atom := range map[string]core.Atom{
		VertexC1: {Element: "C", Name: "C1", ResName: "EOH", ResID: 1},
		VertexC2: {Element: "C", Name: "C2", ResName: "EOH", ResID: 1},
		VertexO1: {Element: "O", Name: "O1", ResName: "EOH", ResID: 1},
		VertexH1: {Element: "H", Name: "H1", ResName: "EOH", ResID: 1},
		VertexH2: {Element: "H", Name: "HO", ResName: "EOH", ResID: 1},
	} {
		require.NoError(t, g.AddAtom(id, atom))
	}
	for _, e := range [][2]string{{VertexC1, VertexC2}, {VertexC2, VertexO1}, {VertexC1, VertexH1}, {VertexO1, VertexH2}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}
