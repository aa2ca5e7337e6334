// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph given as a vertex count n and a list of core.Edge values:
// Kruskal's algorithm (the primary builder) and Prim's algorithm (an independent cross-check).
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - What if G is not connected?
//     Then no spanning tree exists and both algorithms return a minimum spanning forest: one MST per
//     connected component, with n − (#components) edges in total. This is a valid result, not an error.
//     Callers that need a tree either check IsSpanning(n, mst) or pass WithSpanningTree(), which turns a
//     forest into ErrDisconnected.
//
//   - Why MST matters here:
//     Clustering. Cutting the k−1 heaviest MST edges splits the vertices into k groups (see package cluster).
//
// Algorithms Provided
//
//   - Kruskal(n int, edges []core.Edge, opts ...Option) ([]core.Edge, float64, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest. A disjoint set (package dsu)
//     merges components; an edge whose endpoints already share a root is skipped. Stop once n−1 edges are in.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: the sort is stable, so for equal weights the edge that comes first in the input wins.
//     Several MSTs of equal cost may exist; which one is returned depends only on the input order.
//
//   - Output order: acceptance order, which is ascending weight.
//
//   - Prim(n int, edges []core.Edge, root int, opts ...Option) ([]core.Edge, float64, error)
//
//   - Strategy: Grow a tree from root with a min-heap of candidate edges; when the heap runs dry restart
//     from the smallest unvisited vertex, so disconnected inputs give a forest like Kruskal.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Output order: discovery order (not sorted by weight).
//
//   - Compute(n, edges, opts...) dispatches on WithMethod(MethodKruskal|MethodPrim) and WithRoot(r).
//
// Error Conditions
//
//	Inputs are checked with core.Validate before any work; the whole call is rejected on violation:
//
//	- core.ErrBadVertexCount   – n < 0
//	- core.ErrVertexOutOfRange – an endpoint (or Prim's root) outside [0, n)
//	- core.ErrSelfLoop         – an edge with U == V
//	- core.ErrBadWeight        – a negative, NaN or infinite weight
//	- ErrDisconnected          – WithSpanningTree() and the input is not connected
//	- ErrUnknownMethod         – Compute with an unknown method name
//
// Concurrency
//
//	Both functions are pure with respect to their arguments: the disjoint set and heap are private
//	to one call, so concurrent calls on shared read-only inputs are safe.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
