// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = nil    (vertex ID = atom name)
//   - resName   = "MOL"
//   - resID     = 1
//   - chain     = ""     (no chain identifier)
//   - hydrogens = true

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps the n-th added vertex to its ID; nil keeps atom names.
	idFn IDFn

	// Residue identity stamped on every atom.
	resName string
	resID   int
	chain   string

	// hydrogens toggles implicit hydrogen generation.
	hydrogens bool
}

const (
	defaultResName = "MOL"
	defaultResID   = 1
)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		resName:   defaultResName,
		resID:     defaultResID,
		hydrogens: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
