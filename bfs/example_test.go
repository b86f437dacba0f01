package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/molmatch/bfs"
	"github.com/katalvlaran/molmatch/core"
)

// ExampleComponents splits a structure into its bonded fragments.
//
//	H1─O1─H2      Na
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("O1", "H1", 0)
	_, _ = g.AddEdge("O1", "H2", 0)
	_ = g.AddVertex("Na")

	frags, err := bfs.Components(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range frags {
		fmt.Println(f)
	}

	// Output:
	// [H1 O1 H2]
	// [Na]
}
