// SPDX-License-Identifier: MIT
// Package: mstcluster/cluster
//
// linkage.go - single-linkage dendrogram from MST edges.
//
// Replaying MST edges in ascending weight order is exactly single-linkage
// agglomeration: each edge merges the two clusters holding its endpoints at a
// height equal to the edge weight. Rows follow SciPy's linkage layout.

package cluster

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/core"
	"github.com/katalvlaran/mstcluster/dsu"
)

// Linkage returns the single-linkage merge history of mst over n vertices.
//
// Row i merges clusters Left and Right (Left < Right) at Distance, creating
// cluster n+i of Size points. Distances are non-decreasing; ties keep input
// order. A spanning tree yields n-1 rows ending with Size == n.
//
// Errors:
//   - core validation errors for malformed edges or n < 0.
//   - ErrNotForest if an edge joins two already-connected vertices.
//
// Complexity: O(m log m + n α(n)).
func Linkage(mst []core.Edge, n int) ([]Merge, error) {
	if err := core.Validate(n, mst); err != nil {
		return nil, fmt.Errorf("Linkage: %w", err)
	}

	ds, _ := dsu.New(n) // n >= 0 checked above
	// id[r] is the dendrogram id of the cluster whose DisjointSet root is r.
	id := make([]int, n)
	for v := range id {
		id[v] = v
	}

	merges := make([]Merge, 0, len(mst))
	for _, e := range core.SortByWeight(mst) {
		ru, _ := ds.Find(e.U)
		rv, _ := ds.Find(e.V)
		if ru == rv {
			return nil, fmt.Errorf("Linkage: edge %s: %w", e, ErrNotForest)
		}

		left, right := id[ru], id[rv]
		if left > right {
			left, right = right, left
		}
		_, _ = ds.Union(ru, rv)
		root, _ := ds.Find(ru)
		size, _ := ds.SizeOf(root)

		merges = append(merges, Merge{Left: left, Right: right, Distance: e.Weight, Size: size})
		id[root] = n + len(merges) - 1
	}

	return merges, nil
}
