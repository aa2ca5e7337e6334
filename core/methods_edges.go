// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge-list helpers: validation, undirected de-duplication, deterministic
//       weight ordering and cost summation.
// Determinism:
//   - SortByWeight is stable: equal weights keep their input order.
//   - Dedup keeps the first-seen order of unordered pairs.
// AI-HINT (file):
//   - Validate reports every violation at once (multierror); branch with errors.Is.
//   - None of these helpers mutate the caller's slice.

package core

import (
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// ValidateEdge checks one edge against a vertex set of size n.
//
// Errors (first failing check wins):
//   - ErrVertexOutOfRange: U or V outside [0, n).
//   - ErrSelfLoop:         U == V.
//   - ErrBadWeight:        Weight is negative, NaN or ±Inf.
//
// Complexity: O(1).
func ValidateEdge(n int, e Edge) error {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return ErrVertexOutOfRange
	}
	if e.U == e.V {
		return ErrSelfLoop
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
		return ErrBadWeight
	}

	return nil
}

// Validate checks n and every edge, collecting all violations.
//
// The returned error is a *multierror.Error whose entries wrap the sentinels
// above with the edge index, so errors.Is(err, ErrSelfLoop) reports whether
// any edge was a self-loop. A nil return means the input is well-formed.
//
// Complexity: O(E).
func Validate(n int, edges []Edge) error {
	if n < 0 {
		return ErrBadVertexCount
	}

	var result *multierror.Error
	for i, e := range edges {
		if err := ValidateEdge(n, e); err != nil {
			result = multierror.Append(result, edgeErrorf(i, e, err))
		}
	}

	return result.ErrorOrNil()
}

// Dedup collapses undirected duplicates: for every unordered pair {u,v} only the
// lightest edge survives (the first one on equal weight). The output is canonical
// (U <= V) and ordered by the first appearance of each pair in edges.
//
// Complexity: O(E) time, O(E) space.
func Dedup(edges []Edge) []Edge {
	type pair struct{ u, v int }

	at := make(map[pair]int, len(edges)) // pair -> index in out
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		c := e.Canonical()
		key := pair{c.U, c.V}
		if i, ok := at[key]; ok {
			if c.Weight < out[i].Weight {
				out[i].Weight = c.Weight
			}
			continue
		}
		at[key] = len(out)
		out = append(out, c)
	}

	return out
}

// SortByWeight returns a copy of edges ordered by ascending weight.
// The sort is stable, so ties are broken by input position; this is the
// deterministic total order used by Kruskal.
//
// Complexity: O(E log E) time, O(E) space.
func SortByWeight(edges []Edge) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	return sorted
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
