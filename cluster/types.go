// SPDX-License-Identifier: MIT
// Package: mstcluster/cluster
//
// types.go - sentinel errors, result types and functional options.

package cluster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstcluster/core"
	"github.com/katalvlaran/mstcluster/matrix"
	"github.com/katalvlaran/mstcluster/prim_kruskal"
)

// ErrOutOfRange is the contract-violation class for numeric parameters
// outside their documented domain.
var ErrOutOfRange = errors.New("cluster: parameter out of range")

// ErrInvalidK indicates k < 1 or k > len(mst)+1. It wraps ErrOutOfRange.
var ErrInvalidK = fmt.Errorf("cluster: invalid cluster count: %w", ErrOutOfRange)

// ErrBadThreshold indicates a NaN or negative cut threshold.
var ErrBadThreshold = errors.New("cluster: threshold must be a non-negative number")

// ErrNotForest indicates an edge whose endpoints are already connected by
// earlier (lighter) edges, so the input is not a tree or forest.
var ErrNotForest = errors.New("cluster: edges contain a cycle")

// Merge is one dendrogram step: clusters Left and Right (Left < Right) join at
// Distance into a cluster of Size points. Ids below n are input vertices; the
// i-th merge creates cluster n+i.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// Result is the output of Points.
type Result struct {
	MST    []core.Edge // spanning tree (or forest) of the complete distance graph
	Cost   float64     // total MST weight
	Labels []int       // Labels[i] is the cluster of point i
}

// Options configure Points.
type Options struct {
	metric matrix.Metric
	mst    []prim_kruskal.Option
}

// Option customizes Options.
type Option func(*Options)

// WithMetric selects the point distance (matrix.Euclidean by default).
func WithMetric(m matrix.Metric) Option {
	return func(o *Options) {
		o.metric = m
	}
}

// WithMSTOptions forwards options to prim_kruskal.Compute (method, root, ...).
func WithMSTOptions(opts ...prim_kruskal.Option) Option {
	return func(o *Options) {
		o.mst = append(o.mst, opts...)
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{metric: matrix.Euclidean}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
