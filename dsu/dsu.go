// SPDX-License-Identifier: MIT
// Package: mstcluster/dsu
//
// dsu.go - DisjointSet storage, find/union and component labelling.
//
// Design contract:
//   - parent[v] == v marks a root; size[r] is meaningful only for roots.
//   - Public methods validate indices and return ErrOutOfRange, never panic.
//   - Deterministic: same call sequence ⇒ same parent forest and labels.

package dsu

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative element count passed to New.
var ErrBadSize = errors.New("dsu: size must be >= 0")

// ErrOutOfRange indicates an element outside [0, Len()).
var ErrOutOfRange = errors.New("dsu: element out of range")

// DisjointSet is a union-find forest over elements 0..n-1.
// The zero value is an empty set; use New to allocate one with elements.
type DisjointSet struct {
	parent []int // parent[v]; parent[r] == r for roots
	size   []int // size[r] = number of elements under root r
	count  int   // number of components
}

// New creates a DisjointSet with n singleton components.
// Complexity: O(n) time and space.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadSize)
	}

	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	ds.Reset()

	return ds, nil
}

// Reset returns every element to its own singleton component, reusing storage.
// Complexity: O(n).
func (ds *DisjointSet) Reset() {
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	ds.count = len(ds.parent)
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Count returns the current number of components.
func (ds *DisjointSet) Count() int { return ds.count }

// Find returns the root of v's component, compressing the path from v.
//
// Errors: ErrOutOfRange if v ∉ [0, Len()).
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Find(v int) (int, error) {
	if err := ds.check("Find", v); err != nil {
		return 0, err
	}

	return ds.find(v), nil
}

// Union merges the components of a and b.
//
// Returns false if a and b were already connected (nothing changes), true if two
// components were merged. The smaller component goes under the larger root; on
// equal sizes b's root goes under a's root.
//
// Errors: ErrOutOfRange if either element is outside [0, Len()); the forest is
// left untouched in that case.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Union(a, b int) (bool, error) {
	if err := ds.check("Union", a); err != nil {
		return false, err
	}
	if err := ds.check("Union", b); err != nil {
		return false, err
	}

	return ds.union(a, b), nil
}

// Connected reports whether a and b share a component.
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	if err := ds.check("Connected", a); err != nil {
		return false, err
	}
	if err := ds.check("Connected", b); err != nil {
		return false, err
	}

	return ds.find(a) == ds.find(b), nil
}

// SizeOf returns the number of elements in v's component.
func (ds *DisjointSet) SizeOf(v int) (int, error) {
	if err := ds.check("SizeOf", v); err != nil {
		return 0, err
	}

	return ds.size[ds.find(v)], nil
}

// Labels assigns dense labels 0..Count()-1 to components, in order of each
// component's smallest element: labels[0] == 0, and the first element not in
// component 0 opens label 1, and so on. labels[v] is v's label.
//
// Complexity: O(n α(n)).
func (ds *DisjointSet) Labels() []int {
	labels := make([]int, len(ds.parent))
	byRoot := make(map[int]int, ds.count)
	for v := range ds.parent {
		r := ds.find(v)
		l, ok := byRoot[r]
		if !ok {
			l = len(byRoot)
			byRoot[r] = l
		}
		labels[v] = l
	}

	return labels
}

// find locates the root, then re-points every node on the path at it.
func (ds *DisjointSet) find(v int) int {
	root := v
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[v] != root {
		v, ds.parent[v] = ds.parent[v], root
	}

	return root
}

func (ds *DisjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	// union by size; ties keep a's root on top
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	ds.count--

	return true
}

func (ds *DisjointSet) check(method string, v int) error {
	if v < 0 || v >= len(ds.parent) {
		return fmt.Errorf("%s(%d): %w", method, v, ErrOutOfRange)
	}

	return nil
}
