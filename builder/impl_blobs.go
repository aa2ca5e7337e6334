// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// impl_blobs.go - isotropic Gaussian blobs.
//
// Model:
//   - Point i belongs to blob i mod k (round robin), so blob sizes differ by at most one.
//   - Each coordinate is center[d] + spread·N(0,1).
//
// Contract:
//   - n >= MinBlobsPoints (else ErrTooFewPoints).
//   - centers non-empty, equal positive dimension, finite (else ErrBadCenters).
//   - spread > 0 requires cfg.rng (else ErrNeedRandSource).

package builder

import "math"

// Blobs returns n points scattered around centers; Labels[i] is the index of
// the center point i was drawn around.
// Complexity: O(n·d) time and space.
func Blobs(n int, centers [][]float64, opts ...BuilderOption) (Dataset, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters.
	if n < MinBlobsPoints {
		return Dataset{}, builderErrorf(MethodBlobs, ErrTooFewPoints, "n=%d < min=%d", n, MinBlobsPoints)
	}
	if err := validateCenters(centers); err != nil {
		return Dataset{}, err
	}
	if cfg.spread > 0 && cfg.rng == nil {
		return Dataset{}, builderErrorf(MethodBlobs, ErrNeedRandSource, "spread=%g", cfg.spread)
	}

	// 2) Sample round robin.
	k := len(centers)
	dim := len(centers[0])
	ds := Dataset{
		Points: make([][]float64, n),
		Labels: make([]int, n),
	}
	for i := 0; i < n; i++ {
		c := i % k
		p := make([]float64, dim)
		for d := range p {
			p[d] = centers[c][d]
			if cfg.spread > 0 {
				p[d] += cfg.spread * cfg.rng.NormFloat64()
			}
		}
		ds.Points[i] = p
		ds.Labels[i] = c
	}

	return ds, nil
}

// validateCenters checks the center list shape and values.
func validateCenters(centers [][]float64) error {
	if len(centers) == 0 {
		return builderErrorf(MethodBlobs, ErrBadCenters, "no centers")
	}
	dim := len(centers[0])
	for i, c := range centers {
		if len(c) == 0 || len(c) != dim {
			return builderErrorf(MethodBlobs, ErrBadCenters, "center %d has dimension %d, want %d", i, len(c), dim)
		}
		for _, x := range c {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return builderErrorf(MethodBlobs, ErrBadCenters, "center %d is not finite", i)
			}
		}
	}

	return nil
}
