// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// options.go - functional options for dataset generators.
//
// Option constructors validate their arguments and panic on nonsense values.
// Generators themselves never panic.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise sets the standard deviation of the Gaussian jitter added to each
// Moons coordinate. Panics if sigma is negative, NaN or Inf.
func WithNoise(sigma float64) BuilderOption {
	if !validSigma(sigma) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithSpread sets the per-coordinate standard deviation of Blobs.
// Panics if sigma is negative, NaN or Inf.
func WithSpread(sigma float64) BuilderOption {
	if !validSigma(sigma) {
		panic("builder: WithSpread(sigma<0)")
	}
	return func(c *builderConfig) {
		c.spread = sigma
	}
}

func validSigma(sigma float64) bool {
	return !math.IsNaN(sigma) && !math.IsInf(sigma, 0) && sigma >= 0
}
