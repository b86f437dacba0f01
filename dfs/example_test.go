package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/dfs"
)

// ExampleRings finds the single ring closure of cyclopentane.
func ExampleRings() {
	g, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithHydrogens(false)}, builder.Ring("C", 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rings, _ := dfs.Rings(g)
	fmt.Println(rings)

	// Output:
	// [[C1 C2 C3 C4 C5 C1]]
}
