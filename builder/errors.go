// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach method context with %w; option constructors panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that the requested sample count is below the
// minimum for the generator (Moons needs 2, Blobs needs 1).
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadCenters indicates an empty center list, a zero-dimensional center,
// centers of differing dimension, or a non-finite center coordinate.
var ErrBadCenters = errors.New("builder: invalid centers")

// builderErrorf prefixes err with the method name and a formatted message,
// keeping err in the chain for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
