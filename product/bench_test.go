package product_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/molmatch/core"
	"github.com/katalvlaran/molmatch/product"
)

func benchRing(b *testing.B, n int) *core.Graph {
	atoms := map[string]string{}
	var bonds [][2]string
	for i := 0; i < n; i++ {
		atoms[fmt.Sprintf("C%d", i)] = "C"
		bonds = append(bonds, [2]string{fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", (i+1)%n)})
	}

	return molecule(b, atoms, bonds)
}

// BenchmarkModularProduct_Ring6 measures product construction for two benzene-sized rings.
func BenchmarkModularProduct_Ring6(b *testing.B) {
	r1, r2 := benchRing(b, 6), benchRing(b, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = product.CategoricalModularProduct(r1, r2, []string{core.AttrElement})
	}
}

// BenchmarkMaximalCliques_Ring6 enumerates all maximal cliques of the ring product.
func BenchmarkMaximalCliques_Ring6(b *testing.B) {
	g := product.CategoricalModularProduct(benchRing(b, 6), benchRing(b, 6), []string{core.AttrElement})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range product.MaximalCliques(g) {
		}
	}
}
