// SPDX-License-Identifier: MIT
// Package: mstcluster/cluster
//
// extract.go - flat cluster assignments from an MST: cut by count (k) or by height.

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstcluster/core"
	"github.com/katalvlaran/mstcluster/dsu"
)

// ExtractClusters removes the k-1 heaviest edges of mst and labels the
// remaining connected components over vertices 0..n-1.
//
// Equal weights are ordered by position in mst (stable sort), so among tied
// heaviest edges the later ones are cut first. A spanning tree yields exactly
// k clusters; a forest of c trees yields c+k-1.
//
// Errors:
//   - core validation errors for malformed edges or n < 0.
//   - ErrInvalidK if k < 1 or k > len(mst)+1.
//
// Complexity: O(m log m + n α(n)).
func ExtractClusters(mst []core.Edge, n, k int) ([]int, error) {
	// 1) Reject malformed input before touching any state.
	if err := core.Validate(n, mst); err != nil {
		return nil, fmt.Errorf("ExtractClusters: %w", err)
	}
	if k < 1 || k > len(mst)+1 {
		return nil, fmt.Errorf("ExtractClusters: k=%d not in [1,%d]: %w", k, len(mst)+1, ErrInvalidK)
	}

	// 2) Keep the len(mst)-(k-1) lightest edges.
	sorted := core.SortByWeight(mst)

	return components(n, sorted[:len(sorted)-(k-1)]), nil
}

// CutAt removes every edge heavier than threshold and labels the remaining
// components. Edges of weight exactly threshold are kept.
//
// Errors:
//   - core validation errors for malformed edges or n < 0.
//   - ErrBadThreshold if threshold is NaN or negative.
//
// Complexity: O(m + n α(n)).
func CutAt(mst []core.Edge, n int, threshold float64) ([]int, error) {
	if err := core.Validate(n, mst); err != nil {
		return nil, fmt.Errorf("CutAt: %w", err)
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("CutAt(%g): %w", threshold, ErrBadThreshold)
	}

	kept := make([]core.Edge, 0, len(mst))
	for _, e := range mst {
		if e.Weight <= threshold {
			kept = append(kept, e)
		}
	}

	return components(n, kept), nil
}

// Sizes returns the number of members of each label: Sizes(labels)[l] counts
// the vertices labelled l. Labels are expected to be dense (0..c-1); negative
// labels are ignored.
func Sizes(labels []int) []int {
	var sizes []int
	for _, l := range labels {
		if l < 0 {
			continue
		}
		for l >= len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[l]++
	}

	return sizes
}

// components unions edges into a fresh DisjointSet and returns its labels.
// Edges must already be validated against n.
func components(n int, edges []core.Edge) []int {
	ds, _ := dsu.New(n) // n >= 0 checked by core.Validate
	for _, e := range edges {
		_, _ = ds.Union(e.U, e.V) // endpoints in range, checked by core.Validate
	}

	return ds.Labels()
}
