// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It consumes a vertex count and a list of undirected weighted edges and produces the MST,
// or the minimum spanning forest when the input is disconnected.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/core"
	"github.com/katalvlaran/mstcluster/dsu"
)

// Kruskal computes the minimum spanning forest of the graph with vertices 0..n-1
// and the given edges. For a connected input this is the MST.
//
// Error Conditions:
//   - core.ErrBadVertexCount, core.ErrVertexOutOfRange, core.ErrSelfLoop,
//     core.ErrBadWeight : malformed input (all violations reported together).
//   - ErrDisconnected   : only with WithSpanningTree(), when fewer than n-1 edges were accepted.
//
// Steps:
//  1. Validate n and every edge; reject the call before any work on violation.
//  2. If n <= 1 → empty result, weight 0.
//  3. Sort a copy of edges by ascending weight (stable: ties keep input order).
//  4. Initialize a fresh disjoint set over 0..n-1.
//  5. Loop over sorted edges: Union(u,v) == true ⇒ accept edge, add its weight.
//  6. Once the result has n-1 edges, break.
//  7. A result with fewer than n-1 edges is a forest; an error only if a tree was demanded.
//
// The returned edges are in acceptance order, which is also ascending weight.
// Neither n nor edges is mutated.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []core.Edge, opts ...Option) ([]core.Edge, float64, error) {
	o := resolve(opts)

	// 1. Validate the whole input up front so no partial result escapes.
	if err := core.Validate(n, edges); err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}

	// 2. Zero or one vertex: the (empty) forest is already complete.
	if n <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Deterministic weight order over a private copy.
	sorted := core.SortByWeight(edges)

	// 4. One component per vertex.
	ds, err := dsu.New(n)
	if err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}

	// 5. Greedy pass.
	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range sorted {
		merged, err := ds.Union(e.U, e.V)
		if err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
		if !merged {
			// Endpoints already connected: the edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 6. Spanning tree complete.
		if len(mst) == n-1 {
			break
		}
	}

	// 7. Forest result.
	if o.Spanning && len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
