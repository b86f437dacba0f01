// SPDX-License-Identifier: MIT
// Package: molmatch/builder

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps the idx-th vertex of the graph to its ID. Without one, vertex IDs
// are the atom names. Same idx, same ID.
type IDFn func(idx int) string

// DefaultIDFn numbers atoms "0", "1", ..., the scheme graphio.ReadPDB uses.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn numbers atoms after prefix: "a0", "a1", ...
// A negative idx is a programming error and panics.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs restores DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
