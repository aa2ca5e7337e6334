// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// impl_moons.go - two interleaving half circles.
//
// Model:
//   - Outer moon (label 0): m0 = n - n/2 points (cos t, sin t), t evenly spaced over [0, π].
//   - Inner moon (label 1): m1 = n/2 points (1 - cos t, 0.5 - sin t), t over [0, π].
//   - Every coordinate gets N(0, noiseSigma²) jitter when noiseSigma > 0.
//
// Contract:
//   - n >= MinMoonsPoints (else ErrTooFewPoints).
//   - noiseSigma > 0 requires cfg.rng (else ErrNeedRandSource).
//
// Determinism: outer points first, then inner; draws happen x then y per point.

package builder

import "math"

// Moons returns n points on two interleaving half circles.
// Complexity: O(n) time and space.
func Moons(n int, opts ...BuilderOption) (Dataset, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters.
	if n < MinMoonsPoints {
		return Dataset{}, builderErrorf(MethodMoons, ErrTooFewPoints, "n=%d < min=%d", n, MinMoonsPoints)
	}
	if cfg.noiseSigma > 0 && cfg.rng == nil {
		return Dataset{}, builderErrorf(MethodMoons, ErrNeedRandSource, "noise=%g", cfg.noiseSigma)
	}

	// 2) Lay out both arcs.
	nInner := n / 2
	nOuter := n - nInner
	ds := Dataset{
		Points: make([][]float64, 0, n),
		Labels: make([]int, 0, n),
	}
	for i := 0; i < nOuter; i++ {
		t := arcAngle(i, nOuter)
		ds.Points = append(ds.Points, []float64{math.Cos(t), math.Sin(t)})
		ds.Labels = append(ds.Labels, 0)
	}
	for i := 0; i < nInner; i++ {
		t := arcAngle(i, nInner)
		ds.Points = append(ds.Points, []float64{1 - math.Cos(t), 0.5 - math.Sin(t)})
		ds.Labels = append(ds.Labels, 1)
	}

	// 3) Jitter.
	if cfg.noiseSigma > 0 {
		for _, p := range ds.Points {
			p[0] += cfg.noiseSigma * cfg.rng.NormFloat64()
			p[1] += cfg.noiseSigma * cfg.rng.NormFloat64()
		}
	}

	return ds, nil
}

// arcAngle returns the i-th of m evenly spaced angles over [0, π].
func arcAngle(i, m int) float64 {
	if m == 1 {
		return 0
	}

	return math.Pi * float64(i) / float64(m-1)
}
