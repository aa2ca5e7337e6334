// Package matrix provides the distance side of MST clustering: a dense,
// symmetric distance matrix, pairwise distance computation over point sets,
// and the conversion of a distance matrix into a complete-graph edge list.
//
// The matrix package provides:
//
//   - Dense: an n×n row-major symmetric matrix with zero diagonal. Set writes
//     both (i,j) and (j,i); At/Set return errors instead of panicking.
//   - Pairwise(points, opts...): all pairwise distances under a Metric
//     (Euclidean by default, also Manhattan, Chebyshev and Minkowski(p)),
//     computed with gonum's floats.Distance.
//   - FromRows(rows, opts...): ingest a precomputed matrix after checking shape,
//     symmetry and diagonal within the configured epsilon.
//   - (*Dense).Edges(): the n(n−1)/2 edges (i<j, row-major) of the complete
//     graph, ready for prim_kruskal.Kruskal.
//
// Matrices cost O(n²) memory; this is the natural representation for the
// complete graph over a point set, which has Θ(n²) edges anyway.
//
// Errors are package sentinels (ErrBadShape, ErrNonSquare, ErrOutOfRange, ErrNaNInf,
// ErrNegative, ErrNonZeroDiagonal, ErrAsymmetry, ErrDimensionMismatch,
// ErrUnknownMetric) wrapped with call-site context; branch with errors.Is.
package matrix
