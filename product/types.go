package product

import (
	"sort"

	"github.com/katalvlaran/molmatch/core"
)

// Pair is a product node: Left is a vertex ID of the first graph, Right of the second.
type Pair struct {
	Left  string
	Right string
}

// Values holds one attribute value per source graph; nil when absent on that side.
type Values struct {
	Left  interface{}
	Right interface{}
}

// Graph is an index-based undirected graph over Pairs.
// Node indices are dense (0..Len()-1) and follow insertion order.
type Graph struct {
	nodes     []Pair
	index     map[Pair]int
	nodeAttrs []map[string]Values
	adj       []bitset
	edgeAttrs map[[2]int]map[string]Values
	edges     int
}

// NewGraph returns an empty product graph.
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[Pair]int),
		edgeAttrs: make(map[[2]int]map[string]Values),
	}
}

// AddNode inserts p if absent and returns its index.
func (g *Graph) AddNode(p Pair) int {
	if i, ok := g.index[p]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, p)
	g.index[p] = i
	g.nodeAttrs = append(g.nodeAttrs, nil)
	g.adj = append(g.adj, nil)

	return i
}

// AddEdge joins nodes i and j. Loops and repeated edges are ignored.
func (g *Graph) AddEdge(i, j int) {
	if i == j || g.HasEdge(i, j) {
		return
	}
	n := len(g.nodes)
	g.adj[i] = g.adj[i].grow(n)
	g.adj[j] = g.adj[j].grow(n)
	g.adj[i].set(j)
	g.adj[j].set(i)
	g.edges++
}

// HasEdge reports whether i and j are joined.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) {
		return false
	}

	return g.adj[i].has(j)
}

// Len returns the number of product nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of product edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns the product nodes in index order. The slice is a copy.
func (g *Graph) Nodes() []Pair {
	out := make([]Pair, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Node returns the pair at index i.
func (g *Graph) Node(i int) Pair { return g.nodes[i] }

// Index returns the index of p and whether it is present.
func (g *Graph) Index(p Pair) (int, bool) {
	i, ok := g.index[p]

	return i, ok
}

// NodeAttrs returns the paired attributes stored on node i (nil when none).
func (g *Graph) NodeAttrs(i int) map[string]Values { return g.nodeAttrs[i] }

// EdgeAttrs returns the paired bond attributes stored on edge i–j (nil when none).
func (g *Graph) EdgeAttrs(i, j int) map[string]Values {
	return g.edgeAttrs[edgeKey(i, j)]
}

// Neighbors returns the indices joined to i, ascending.
func (g *Graph) Neighbors(i int) []int { return g.adj[i].members() }

// CliqueMapping interprets a clique (node indices of g) as a Left→Right mapping.
func CliqueMapping(g *Graph, clique []int) map[string]string {
	m := make(map[string]string, len(clique))
	for _, i := range clique {
		m[g.nodes[i].Left] = g.nodes[i].Right
	}

	return m
}

// Pairs returns the pairs of a clique sorted by (Left, Right).
func (g *Graph) Pairs(clique []int) []Pair {
	out := make([]Pair, 0, len(clique))
	for _, i := range clique {
		out = append(out, g.nodes[i])
	}
	SortPairs(out)

	return out
}

// SortPairs orders pairs by Left then Right.
func SortPairs(ps []Pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Left != ps[j].Left {
			return ps[i].Left < ps[j].Left
		}
		return ps[i].Right < ps[j].Right
	})
}

// Compatible reports whether every attribute in attrs is present on both
// vertices with equal values. An empty selector admits every pair.
func Compatible(a, b *core.Vertex, attrs []string) bool {
	for _, name := range attrs {
		va, okA := a.Attr(name)
		vb, okB := b.Attr(name)
		if !okA || !okB || !core.EqualValues(va, vb) {
			return false
		}
	}

	return true
}

func edgeKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}
