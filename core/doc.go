// Package core defines the data model shared by the MST and clustering packages:
// dense integer vertices, undirected weighted edges and edge lists.
//
// A Vertex is an index in [0, n). The vertex set is therefore described by its
// size alone and is owned by the caller; nothing in this module mutates it.
//
// An Edge is the triple (Weight, U, V). Edges are undirected, so (w,u,v) and
// (w,v,u) are the same edge; Canonical() normalizes the orientation and Dedup
// drops the duplicates a symmetric distance matrix produces.
//
// Contract violations:
//
//	ErrBadVertexCount   – n < 0
//	ErrVertexOutOfRange – endpoint outside [0, n)
//	ErrSelfLoop         – U == V
//	ErrBadWeight        – negative, NaN or ±Inf weight
//
// Validate reports all violations of an edge list at once; every entry wraps one
// of the sentinels above, so callers branch with errors.Is.
//
// Ordering:
//
//	SortByWeight(edges) – stable ascending copy; equal weights keep input order.
//
// The stable order is the tie-break policy of the whole module: for equal
// weights the edge that appears earlier in the input is considered first.
package core
