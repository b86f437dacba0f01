// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w (see builderErrorf).
//   - Constructors never panic; option constructors panic on programmer error.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewAtoms indicates a size parameter below the constructor's minimum.
var ErrTooFewAtoms = errors.New("builder: too few atoms")

// ErrEmptyElement indicates an empty element symbol.
var ErrEmptyElement = errors.New("builder: element is empty")

// ErrConstructFailed indicates a nil constructor or a failed core mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>" keeping %w verbs intact.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
