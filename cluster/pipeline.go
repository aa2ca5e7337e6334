// SPDX-License-Identifier: MIT
// Package: mstcluster/cluster
//
// pipeline.go - end-to-end clustering of raw points.

package cluster

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/matrix"
	"github.com/katalvlaran/mstcluster/prim_kruskal"
)

// Points clusters raw points into k groups:
//  1. pairwise distances under the configured metric (matrix.Pairwise),
//  2. MST of the complete distance graph (prim_kruskal.Compute, Kruskal by default),
//  3. ExtractClusters(mst, len(points), k).
//
// Errors from each stage are returned wrapped with the "Points" prefix;
// matrix errors for bad points, ErrInvalidK for k ∉ [1, len(points)].
//
// Complexity: O(n²·d + n² log n).
func Points(points [][]float64, k int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	edges, err := matrix.PointEdges(points, matrix.WithMetric(o.metric))
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}

	mst, cost, err := prim_kruskal.Compute(len(points), edges, o.mst...)
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}

	labels, err := ExtractClusters(mst, len(points), k)
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}

	return &Result{MST: mst, Cost: cost, Labels: labels}, nil
}
