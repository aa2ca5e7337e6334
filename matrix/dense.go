// SPDX-License-Identifier: MIT

// Package matrix - Dense symmetric distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the matrix a valid distance matrix at all times: symmetric, zero diagonal,
//     finite non-negative entries.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Row: O(n); Edges: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mstcluster/core"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an n×n symmetric distance matrix.
//   - n is the number of points (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - Invariant: data[i*n+j] == data[j*n+i], data[i*n+i] == 0, entries finite and >= 0.
type Dense struct {
	n    int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero distance matrix.
//
// Errors:
//   - ErrBadShape if n < 1.
//
// Complexity: O(n²) time and space.
func NewDense(n int) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the number of rows (== columns == points).
func (d *Dense) N() int { return d.n }

// At returns the distance between i and j.
//
// Errors: ErrOutOfRange if i or j ∉ [0, n).
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if !d.inRange(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set stores v at (i,j) and (j,i).
//
// Errors (first failing check wins):
//   - ErrOutOfRange      : i or j ∉ [0, n).
//   - ErrNaNInf          : v is NaN or ±Inf.
//   - ErrNegative        : v < 0.
//   - ErrNonZeroDiagonal : i == j and v != 0.
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if !d.inRange(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	if v < 0 {
		return denseErrorf(ctxSet, i, j, ErrNegative)
	}
	if i == j && v != 0 {
		return denseErrorf(ctxSet, i, j, ErrNonZeroDiagonal)
	}
	d.data[i*d.n+j] = v
	d.data[j*d.n+i] = v

	return nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]float64, error) {
	if !d.inRange(i, 0) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	row := make([]float64, d.n)
	copy(row, d.data[i*d.n:(i+1)*d.n])

	return row, nil
}

// Edges returns the complete-graph edge list of the matrix: one edge per
// unordered pair i<j, in row-major order, weighted by the distance.
//
// Complexity: O(n²) time and space; len(result) == n(n−1)/2.
func (d *Dense) Edges() []core.Edge {
	edges := make([]core.Edge, 0, d.n*(d.n-1)/2)
	for i := 0; i < d.n; i++ {
		base := i * d.n
		for j := i + 1; j < d.n; j++ {
			edges = append(edges, core.Edge{Weight: d.data[base+j], U: i, V: j})
		}
	}

	return edges
}

// String renders the matrix one bracketed row per line.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func (d *Dense) inRange(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}
