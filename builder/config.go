// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil  (pure/deterministic unless seeded)
//   • noiseSigma = 0.0  (Moons are exact half circles)
//   • spread     = 1.0  (Blobs standard deviation)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	noiseSigma float64 // >=0, Moons jitter
	spread     float64 // >=0, Blobs standard deviation
}

const (
	defaultNoiseSigma = 0.0
	defaultSpread     = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		noiseSigma: defaultNoiseSigma,
		spread:     defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
