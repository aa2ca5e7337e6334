// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstcluster/core"
)

// ErrDisconnected indicates that a spanning tree was requested (WithSpanningTree)
// but the input graph is not connected, so only a spanning forest exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how a disconnected
// input is reported.
//
// Fields:
//
//	Method   string: one of MethodPrim or MethodKruskal.
//	Root     int:    start vertex for Prim; ignored by Kruskal.
//	Spanning bool:   when true a forest result is rejected with ErrDisconnected.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Spanning demands a single spanning tree instead of a forest.
	Spanning bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithSpanningTree makes a disconnected input an error (ErrDisconnected)
// instead of a minimum spanning forest.
func WithSpanningTree() Option {
	return func(opts *MSTOptions) {
		opts.Spanning = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method   = MethodKruskal
//	– Root     = 0
//	– Spanning = false (forests are valid results).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved options.
//
//	– MethodKruskal: Kruskal(n, edges, opts...).
//	– MethodPrim:    Prim(n, edges, Root, opts...).
//	– Otherwise:     ErrUnknownMethod.
func Compute(n int, edges []core.Edge, opts ...Option) ([]core.Edge, float64, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(n, edges, opts...)
	case MethodPrim:
		return Prim(n, edges, o.Root, opts...)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

// IsSpanning reports whether mst has exactly n-1 edges, i.e. whether a
// forest produced for n vertices is a single tree. A single vertex is spanned
// by the empty tree.
func IsSpanning(n int, mst []core.Edge) bool {
	return n >= 1 && len(mst) == n-1
}

// Components returns the number of trees in a spanning forest of n vertices.
func Components(n int, mst []core.Edge) int {
	return n - len(mst)
}
