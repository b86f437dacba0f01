package blockmodel

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/molmatch/core"
)

// Partition groups the vertices of g by key.
//
// Vertices are visited in sorted ID order and stably sorted by compare, then
// consecutive vertices with equal keys form one group. A nil compare keeps
// groups in order of first appearance.
func Partition[K comparable](g *core.Graph, key func(*core.Vertex) K, compare func(a, b K) int) [][]string {
	type item struct {
		id string
		k  K
	}
	ids := g.Vertices()
	items := make([]item, 0, len(ids))
	for _, id := range ids {
		v, _ := g.Vertex(id)
		items = append(items, item{id: id, k: key(v)})
	}

	if compare == nil {
		var groups [][]string
		at := make(map[K]int)
		for _, it := range items {
			i, seen := at[it.k]
			if !seen {
				i = len(groups)
				at[it.k] = i
				groups = append(groups, nil)
			}
			groups[i] = append(groups[i], it.id)
		}
		return groups
	}

	sort.SliceStable(items, func(i, j int) bool { return compare(items[i].k, items[j].k) < 0 })
	var groups [][]string
	for i, it := range items {
		if i == 0 || items[i-1].k != it.k {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], it.id)
	}

	return groups
}

// ResidueKey identifies a residue.
type ResidueKey struct {
	Chain   string
	ResID   int
	ResName string
}

// Compare orders keys by chain, then resid, then resname.
func (k ResidueKey) Compare(o ResidueKey) int {
	if c := cmp.Compare(k.Chain, o.Chain); c != 0 {
		return c
	}
	if c := cmp.Compare(k.ResID, o.ResID); c != 0 {
		return c
	}

	return cmp.Compare(k.ResName, o.ResName)
}

func residueOf(v *core.Vertex) ResidueKey {
	return ResidueKey{Chain: v.Atom.Chain, ResID: v.Atom.ResID, ResName: v.Atom.ResName}
}

// ResidueGraph returns the quotient of mol with one node per residue, ordered
// by ResidueKey. Each node carries chain, resid and resname, and its atomname
// is the residue name so residue graphs can be matched like molecules.
//
// Errors:
//   - ErrGraphNil if mol is nil.
func ResidueGraph(mol *core.Graph) (*core.Graph, error) {
	if mol == nil {
		return nil, ErrGraphNil
	}
	groups := Partition(mol, residueOf, ResidueKey.Compare)

	chains := make([]interface{}, len(groups))
	resids := make([]interface{}, len(groups))
	resnames := make([]interface{}, len(groups))
	for i, grp := range groups {
		v, _ := mol.Vertex(grp[0])
		k := residueOf(v)
		chains[i], resids[i], resnames[i] = k.Chain, k.ResID, k.ResName
	}

	return Blockmodel(mol, groups, map[string][]interface{}{
		core.AttrChain:    chains,
		core.AttrResID:    resids,
		core.AttrResName:  resnames,
		core.AttrAtomName: resnames,
	})
}
