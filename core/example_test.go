package core_test

import (
	"fmt"

	"github.com/katalvlaran/molmatch/core"
)

// ExampleAddElementAttr builds a water molecule from atom names only and lets
// the elements be derived.
func ExampleAddElementAttr() {
	g := core.NewGraph()
	_ = g.AddAtom("0", core.Atom{Name: "OW", ResName: "SOL", ResID: 1})
	_ = g.AddAtom("1", core.Atom{Name: "1HW", ResName: "SOL", ResID: 1})
	_ = g.AddAtom("2", core.Atom{Name: "2HW", ResName: "SOL", ResID: 1})
	_, _ = g.AddEdge("0", "1", 0)
	_, _ = g.AddEdge("0", "2", 0)

	if err := core.AddElementAttr(g); err != nil {
		fmt.Println(err)
		return
	}
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		nbrs, _ := g.NeighborIDs(id)
		fmt.Println(id, v.Atom.Element, nbrs)
	}

	// Output:
	// 0 O [1 2]
	// 1 H [0]
	// 2 H [0]
}
