// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for distance computation and
// matrix ingestion. This file defines:
//   - Metric, the distance function family (Lp norms),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon defines the non-negative tolerance used by FromRows structural checks.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMinkowskiInvalid = "matrix: Minkowski: p must be >= 1 (or +Inf)"
)

// Metric is an Lp distance between points of equal dimension.
type Metric struct {
	name string
	p    float64
}

// Predefined metrics.
var (
	// Euclidean is the L2 distance (default).
	Euclidean = Metric{name: "euclidean", p: 2}

	// Manhattan is the L1 (city block) distance.
	Manhattan = Metric{name: "manhattan", p: 1}

	// Chebyshev is the L∞ (maximum coordinate difference) distance.
	Chebyshev = Metric{name: "chebyshev", p: math.Inf(1)}
)

// Minkowski returns the Lp metric for p >= 1. Panics on p < 1 or NaN, where
// the Lp "distance" violates the triangle inequality.
func Minkowski(p float64) Metric {
	if math.IsNaN(p) || p < 1 {
		panic(panicMinkowskiInvalid)
	}

	return Metric{name: "minkowski(" + strconv.FormatFloat(p, 'g', -1, 64) + ")", p: p}
}

// ParseMetric resolves a metric name: "euclidean", "manhattan", "chebyshev"
// (case-insensitive), or "minkowski:<p>".
func ParseMetric(name string) (Metric, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "", "euclidean", "l2":
		return Euclidean, nil
	case "manhattan", "l1", "cityblock":
		return Manhattan, nil
	case "chebyshev", "linf":
		return Chebyshev, nil
	}
	if rest, ok := strings.CutPrefix(s, "minkowski:"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err != nil || math.IsNaN(p) || p < 1 {
			return Metric{}, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
		}
		return Minkowski(p), nil
	}

	return Metric{}, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}

// Distance returns the metric distance between a and b.
// Callers must pass slices of equal length (Pairwise validates this).
func (m Metric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, m.p)
}

// String returns the metric name.
func (m Metric) String() string { return m.name }

// ---------- Public option type (functional) ----------

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64 // >= 0; DefaultEpsilon
	metric Metric  // Euclidean
}

// WithEpsilon sets the tolerance for FromRows symmetry and diagonal checks.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.eps = eps
	}
}

// WithMetric selects the distance used by Pairwise.
// The zero Metric resolves to Euclidean.
func WithMetric(m Metric) Option {
	return func(o *Options) {
		o.metric = m
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		metric: Euclidean,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metric.p == 0 {
		o.metric = Euclidean
	}

	return o
}
