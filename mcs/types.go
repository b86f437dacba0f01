package mcs

import (
	"io"
	"iter"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/molmatch/product"
)

// Match maps vertex IDs of the first graph to vertex IDs of the second.
type Match map[string]string

// Pairs returns m as pairs sorted by (Left, Right).
func (m Match) Pairs() []product.Pair {
	ps := make([]product.Pair, 0, len(m))
	for l, r := range m {
		ps = append(ps, product.Pair{Left: l, Right: r})
	}
	product.SortPairs(ps)

	return ps
}

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Logger receives debug events (product sizes, clique counts). Never nil.
	Logger *log.Logger
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes search events to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Maxes returns every item of seq whose key equals the largest key seen,
// in sequence order. The sequence is consumed once and never materialised.
// An empty sequence yields nil.
func Maxes[T any](seq iter.Seq[T], key func(T) int) []T {
	var (
		out  []T
		best int
		seen bool
	)
	for item := range seq {
		k := key(item)
		switch {
		case !seen || k > best:
			out = append(out[:0], item)
			best, seen = k, true
		case k == best:
			out = append(out, item)
		}
	}

	return out
}

// fromCliques turns pair lists into unique Matches in canonical order.
func fromCliques(cliques [][]product.Pair) []Match {
	seen := make(map[string]struct{}, len(cliques))
	keys := make([]string, 0, len(cliques))
	byKey := make(map[string]Match, len(cliques))
	for _, c := range cliques {
		ps := append([]product.Pair(nil), c...)
		product.SortPairs(ps)
		k := pairsKey(ps)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		m := make(Match, len(ps))
		for _, p := range ps {
			m[p.Left] = p.Right
		}
		keys = append(keys, k)
		byKey[k] = m
	}
	sort.Strings(keys)

	out := make([]Match, 0, len(keys))
	for _, k := range keys {
		out = append(out, byKey[k])
	}

	return out
}

// pairsKey encodes sorted pairs; \x00 and \x01 never occur in vertex IDs read by molmatch.
func pairsKey(ps []product.Pair) string {
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(p.Left)
		b.WriteByte(0)
		b.WriteString(p.Right)
		b.WriteByte(1)
	}

	return b.String()
}
