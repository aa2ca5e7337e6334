// Package cluster turns a minimum spanning tree (or forest) into clusters.
//
// Cutting an MST edge splits one tree into two, so removing the k-1 heaviest
// edges of a spanning tree leaves exactly k connected components. This is
// single-linkage clustering: two points share a cluster iff a chain of points
// joins them with every hop no longer than the cut height.
//
// What's inside:
//
//   - ExtractClusters: cut the k-1 heaviest edges, label the components.
//   - CutAt:           cut every edge heavier than a distance threshold.
//   - Linkage:         the full single-linkage dendrogram (SciPy row layout).
//   - Sizes:           members per label.
//   - Points:          raw points → distance matrix → MST → labels in one call.
//
// Labels are dense integers 0..c-1 assigned in order of each component's
// smallest vertex, so vertex 0 is always in cluster 0 and results are
// deterministic for a given edge order.
//
// Errors:
//
//   - core.ErrVertexOutOfRange / ErrSelfLoop / ErrBadWeight / ErrBadVertexCount
//     for malformed input edges (aggregated, see core.Validate).
//   - ErrInvalidK (wraps ErrOutOfRange) when k ∉ [1, len(mst)+1].
//   - ErrBadThreshold for a NaN or negative CutAt threshold.
//   - ErrNotForest when Linkage receives edges that close a cycle.
//
// Complexity: O(m log m + n α(n)) for m MST edges over n vertices.
package cluster
