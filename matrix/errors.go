// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions return
// these sentinels (possibly wrapped with %w) and tests check them via errors.Is.
// No function panics on user-triggered error conditions; option constructors
// panic on programmer errors only.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a matrix or point set is empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative distance.
	ErrNegative = errors.New("matrix: negative distance")

	// ErrNonZeroDiagonal signals a diagonal entry that is not ~0 (within eps).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrAsymmetry signals that a[i][j] and a[j][i] differ by more than eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrDimensionMismatch indicates points of different (or zero) dimensionality.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownMetric indicates an unrecognized metric name in ParseMetric.
	ErrUnknownMetric = errors.New("matrix: unknown metric")
)
