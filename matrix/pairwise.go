// SPDX-License-Identifier: MIT

// Package matrix - builders that produce a Dense distance matrix from raw
// points (Pairwise) or from caller-supplied rows (FromRows).
//
// Determinism: fixed (i, j>i) loop order; distances are computed once per
// unordered pair and mirrored.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstcluster/core"
)

// Pairwise computes the distance matrix of points under the configured Metric
// (WithMetric; Euclidean by default).
//
// Errors:
//   - ErrBadShape          : no points.
//   - ErrDimensionMismatch : a point of zero dimension, or dimensions differ.
//   - ErrNaNInf            : a non-finite coordinate, or a distance overflowing to +Inf.
//
// Complexity: O(n²·d) time, O(n²) space.
func Pairwise(points [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(points) == 0 {
		return nil, fmt.Errorf("Pairwise: %w", ErrBadShape)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) == 0 || len(p) != dim {
			return nil, fmt.Errorf("Pairwise: point %d has dimension %d, want %d: %w", i, len(p), dim, ErrDimensionMismatch)
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("Pairwise: point %d: %w", i, ErrNaNInf)
			}
		}
	}

	d, err := NewDense(len(points))
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if err := d.Set(i, j, o.metric.Distance(points[i], points[j])); err != nil {
				return nil, fmt.Errorf("Pairwise(%s): %w", o.metric, err)
			}
		}
	}

	return d, nil
}

// FromRows builds a Dense from a caller-supplied square matrix.
//
// Checks, in order: non-empty (ErrBadShape), square (ErrNonSquare), finite
// (ErrNaNInf), non-negative (ErrNegative), |a[i][i]| <= eps (ErrNonZeroDiagonal),
// |a[i][j] − a[j][i]| <= eps (ErrAsymmetry). The upper triangle is stored.
//
// Complexity: O(n²).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromRows", i, j, ErrNaNInf)
			}
			if v < 0 {
				return nil, denseErrorf("FromRows", i, j, ErrNegative)
			}
		}
	}

	d, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	for i := 0; i < n; i++ {
		if rows[i][i] > o.eps {
			return nil, denseErrorf("FromRows", i, i, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > o.eps {
				return nil, denseErrorf("FromRows", i, j, ErrAsymmetry)
			}
			// both entries are finite and non-negative, Set cannot fail
			_ = d.Set(i, j, rows[i][j])
		}
	}

	return d, nil
}

// PointEdges is Pairwise followed by Edges: the complete-graph edge list of a point set.
func PointEdges(points [][]float64, opts ...Option) ([]core.Edge, error) {
	d, err := Pairwise(points, opts...)
	if err != nil {
		return nil, err
	}

	return d.Edges(), nil
}
