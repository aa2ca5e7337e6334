// Package prim_kruskal_test provides fixtures and independent oracles shared by
// the tests in this package: seeded random graphs, a brute-force spanning-tree
// enumerator and gonum's Kruskal.
package prim_kruskal_test

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mstcluster/core"
	"github.com/katalvlaran/mstcluster/dsu"
)

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount edges.
// - First, it ensures connectivity by adding a chain 0-1-...-(n-1) with weights in [1..11).
// - Then it adds (edgesCount - (n-1)) additional random edges with weights in [1..101).
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) []core.Edge {
	r := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 0, edgesCount)

	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		edges = append(edges, core.Edge{Weight: weight, U: i - 1, V: i})
	}

	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // skip loops
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		edges = append(edges, core.Edge{Weight: weight, U: u, V: v})
	}

	return edges
}

// randomGraph returns a G(n,p) edge list with integer weights in [1,maxW],
// so equal weights (and therefore several optimal trees) are common.
func randomGraph(r *rand.Rand, n int, p float64, maxW int) []core.Edge {
	var edges []core.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				edges = append(edges, core.Edge{Weight: float64(1 + r.Intn(maxW)), U: u, V: v})
			}
		}
	}

	return edges
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the smallest
// total weight of a subset that spans all n vertices. ok is false when no
// spanning tree exists. Only meant for n <= 8.
func bruteForceMST(n int, edges []core.Edge) (best float64, ok bool) {
	if n <= 1 {
		return 0, true
	}
	best = math.Inf(1)
	chosen := make([]int, 0, n-1)

	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == n-1 {
			ds, _ := dsu.New(n)
			var w float64
			for _, i := range chosen {
				if merged, _ := ds.Union(edges[i].U, edges[i].V); !merged {
					return
				}
				w += edges[i].Weight
			}
			if w < best {
				best, ok = w, true
			}
			return
		}
		for i := start; i <= len(edges)-(n-1-len(chosen)); i++ {
			chosen = append(chosen, i)
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best, ok
}

// gonumForestWeight computes the minimum spanning forest weight with gonum.
// gonum graphs keep a single edge per pair, so duplicates are collapsed first
// (keeping the lightest, which is the only one an MST can use).
func gonumForestWeight(n int, edges []core.Edge) float64 {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < n; v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range core.Dedup(edges) {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: e.Weight})
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, g)
}

// isAcyclic reports whether edges form a forest over n vertices.
func isAcyclic(n int, edges []core.Edge) bool {
	ds, _ := dsu.New(n)
	for _, e := range edges {
		if merged, _ := ds.Union(e.U, e.V); !merged {
			return false
		}
	}

	return true
}

// touched returns the set of vertices that appear in at least one edge.
func touched(edges []core.Edge) map[int]bool {
	seen := make(map[int]bool)
	for _, e := range edges {
		seen[e.U] = true
		seen[e.V] = true
	}

	return seen
}
