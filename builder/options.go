// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

// BuilderOption customizes a build by mutating builderConfig before the first
// constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme maps the n-th added vertex (0-based, across all constructors)
// to its ID. Atom names are unaffected. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithResidue stamps residue name and index on every atom. Panics on an empty name.
func WithResidue(name string, id int) BuilderOption {
	if name == "" {
		panic("builder: WithResidue(\"\")")
	}
	return func(c *builderConfig) {
		c.resName, c.resID = name, id
	}
}

// WithChain stamps a chain identifier on every atom.
func WithChain(chain string) BuilderOption {
	return func(c *builderConfig) {
		c.chain = chain
	}
}

// WithHydrogens toggles implicit hydrogens (default true).
func WithHydrogens(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.hydrogens = on
	}
}
