// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge data model and the sentinel errors shared by every package
//       that consumes an edge list (dsu, prim_kruskal, cluster, matrix).
// Policy:
//   - Vertices are dense integer indices in [0, n); the vertex set is owned by the caller.
//   - Edges are undirected: (w,u,v) and (w,v,u) describe the same edge.
//   - Sentinels are matched with errors.Is; context is attached with %w at the detection site.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for edge-list contract violations.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be >= 0")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("core: self-loop edge")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")
)

// Vertex is a dense vertex index in [0, n).
type Vertex = int

// Edge is an undirected weighted edge between U and V.
//
// Field order mirrors the (weight, u, v) triple used by callers that derive
// edges from a distance matrix.
type Edge struct {
	// Weight is the edge cost (a distance); finite and non-negative.
	Weight float64

	// U is one endpoint.
	U Vertex

	// V is the other endpoint.
	V Vertex
}

// EdgeList is an unordered collection of edges over a vertex set.
type EdgeList []Edge

// Canonical returns e with U <= V, so that both orientations of an
// undirected edge compare equal.
// Complexity: O(1).
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}

	return e
}

// Other returns the endpoint opposite to x. If x is not an endpoint, U is returned.
func (e Edge) Other(x Vertex) Vertex {
	if x == e.U {
		return e.V
	}

	return e.U
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return strconv.Itoa(e.U) + "-" + strconv.Itoa(e.V) + "(" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + ")"
}

// edgeErrorf attaches the edge index and endpoints to a sentinel error.
func edgeErrorf(i int, e Edge, err error) error {
	return fmt.Errorf("edge[%d] %d-%d: %w", i, e.U, e.V, err)
}
