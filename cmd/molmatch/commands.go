package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/molmatch/bfs"
	"github.com/katalvlaran/molmatch/blockmodel"
	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/core"
	"github.com/katalvlaran/molmatch/dfs"
	"github.com/katalvlaran/molmatch/graphio"
	"github.com/katalvlaran/molmatch/isomorph"
	"github.com/katalvlaran/molmatch/mcs"
)

type command struct {
	nargs int
	fn    func(e *env, args []string) error
}

var commands = map[string]command{
	"iso":             {2, cmdIso},
	"mcs":             {2, cmdMCS(mcs.MaximumCommonSubgraph)},
	"mcs-categorical": {2, cmdMCS(mcs.CategoricalMaximumCommonSubgraph)},
	"residues":        {1, cmdResidues},
	"fragments":       {1, cmdFragments},
	"convert":         {2, cmdConvert},
	"demo":            {0, cmdDemo},
}

// load reads a graph and completes missing elements from atom names.
func (e *env) load(path string) (*core.Graph, error) {
	g, err := graphio.Load(path, append(e.cfg.PDBOptions(), graphio.WithLogger(e.logger))...)
	if err != nil {
		return nil, err
	}
	if err := core.AddElementAttr(g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debug("loaded", "path", path, "atoms", g.VertexCount(), "bonds", g.EdgeCount())

	return g, nil
}

func (e *env) loadPair(args []string) (*core.Graph, *core.Graph, error) {
	a, err := e.load(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := e.load(args[1])
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func capMatches[M any](ms []M, limit int) []M {
	if limit > 0 && len(ms) > limit {
		return ms[:limit]
	}

	return ms
}

func cmdIso(e *env, args []string) error {
	ref, res, err := e.loadPair(args)
	if err != nil {
		return err
	}

	return e.iso(ref, res)
}

func (e *env) iso(ref, res *core.Graph) error {
	ms, err := isomorph.Isomorphism(ref, res, isomorph.WithLogger(e.logger))
	if err != nil {
		return err
	}
	e.logger.Info("isomorphism", "matches", len(ms))
	score := func(m isomorph.Mapping) int { return isomorph.RateMatch(ref, res, m) }

	return graphio.WriteMatchesYAML(e.stdout, capMatches(ms, e.cfg.Match.MaxMatches), score)
}

type mcsFunc func(a, b *core.Graph, attrs []string, opts ...mcs.Option) []mcs.Match

func cmdMCS(find mcsFunc) func(*env, []string) error {
	return func(e *env, args []string) error {
		a, b, err := e.loadPair(args)
		if err != nil {
			return err
		}

		return e.mcs(find, a, b)
	}
}

func (e *env) mcs(find mcsFunc, a, b *core.Graph) error {
	ms := find(a, b, e.cfg.Match.Attributes, mcs.WithLogger(e.logger))
	size := 0
	if len(ms) > 0 {
		size = len(ms[0])
	}
	e.logger.Info("maximum common subgraph", "matches", len(ms), "size", size, "attrs", strings.Join(e.cfg.Match.Attributes, ","))

	return graphio.WriteMatchesYAML(e.stdout, capMatches(ms, e.cfg.Match.MaxMatches), nil)
}

func cmdResidues(e *env, args []string) error {
	mol, err := e.load(args[0])
	if err != nil {
		return err
	}
	rg, err := blockmodel.ResidueGraph(mol)
	if err != nil {
		return err
	}
	for _, id := range rg.Vertices() {
		v, _ := rg.Vertex(id)
		n, _ := v.Attr(blockmodel.MetaNNodes)
		m, _ := v.Attr(blockmodel.MetaNEdges)
		d, _ := v.Attr(blockmodel.MetaDensity)
		fmt.Fprintf(e.stdout, "%s\t%s\t%s%d\tatoms=%v bonds=%v density=%.3f\n",
			id, v.Atom.Chain, v.Atom.ResName, v.Atom.ResID, n, m, d)
	}
	for _, edge := range rg.Edges() {
		fmt.Fprintf(e.stdout, "%s-%s\t%g\n", edge.From, edge.To, edge.Weight)
	}

	return nil
}

func cmdFragments(e *env, args []string) error {
	mol, err := e.load(args[0])
	if err != nil {
		return err
	}
	frags, err := bfs.Components(mol, bfs.WithContext(e.ctx))
	if err != nil {
		return err
	}
	rings, err := dfs.Rings(mol)
	if err != nil {
		return err
	}
	owner := make(map[string]int, mol.VertexCount())
	for i, f := range frags {
		for _, id := range f {
			owner[id] = i
		}
	}
	perFrag := make([]int, len(frags))
	for _, r := range rings {
		perFrag[owner[r[0]]]++
	}
	e.logger.Info("fragments", "count", len(frags), "rings", len(rings))
	for i, f := range frags {
		fmt.Fprintf(e.stdout, "%d\t%d\trings=%d\t%s\n", i, len(f), perFrag[i], strings.Join(f, " "))
	}

	return nil
}

func cmdConvert(e *env, args []string) error {
	g, err := e.load(args[0])
	if err != nil {
		return err
	}
	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	switch strings.ToLower(filepath.Ext(args[1])) {
	case ".yaml", ".yml":
		err = graphio.WriteYAML(out, g, name)
	case ".msgpack", ".mpk":
		err = graphio.WriteMsgpack(out, g, name)
	default:
		err = fmt.Errorf("%w: %q", graphio.ErrUnknownFormat, args[1])
	}
	if err != nil {
		return err
	}

	return out.Close()
}

// cmdDemo matches a methyl group against ethane with both strategies.
func cmdDemo(e *env, _ []string) error {
	ethane, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithResidue("ETH", 1)}, builder.Ethane())
	if err != nil {
		return err
	}
	methyl, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithResidue("MET", 1)}, builder.Methyl())
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, "# isomorphism: methyl in ethane")
	if err := e.iso(ethane, methyl); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, "# degree-aware mcs: ethane vs methyl")

	return e.mcs(mcs.MaximumCommonSubgraph, ethane, methyl)
}
