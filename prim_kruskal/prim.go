// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using a min-heap and restarts from the smallest
// unvisited vertex, so disconnected inputs yield the same minimum spanning forest as Kruskal.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstcluster/core"
)

// Prim computes the minimum spanning forest of the graph with vertices 0..n-1
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - core validation sentinels : malformed n or edges (see core.Validate).
//   - core.ErrVertexOutOfRange  : root ∉ [0, n) while n > 0.
//   - ErrDisconnected           : only with WithSpanningTree(), for a disconnected input.
//
// Steps:
//  1. Validate n, edges and root; n == 0 → empty result.
//  2. Build an adjacency index: for every vertex the positions of its incident edges.
//  3. Grow a tree from root:
//     a. Pop the lightest candidate (ties: lower input position first).
//     b. If its far endpoint is visited, skip (cycle).
//     c. Otherwise accept it, mark the endpoint, push the endpoint's edges.
//  4. Restart step 3 from the smallest unvisited vertex until all are visited.
//  5. Forest check when a spanning tree was demanded.
//
// Edges are returned in discovery order, oriented from the tree towards the new
// vertex (U is inside, V is the vertex that joined).
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []core.Edge, root int, opts ...Option) ([]core.Edge, float64, error) {
	o := resolve(opts)

	// 1. Validate.
	if err := core.Validate(n, edges); err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}
	if n == 0 {
		return []core.Edge{}, 0, nil
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("Prim: root %d: %w", root, core.ErrVertexOutOfRange)
	}

	// 2. Adjacency: incident[v] lists indices into edges.
	incident := make([][]int, n)
	for i, e := range edges {
		incident[e.U] = append(incident[e.U], i)
		incident[e.V] = append(incident[e.V], i)
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
		pq          = &edgePQ{}
	)

	push := func(from int) {
		for _, i := range incident[from] {
			e := edges[i]
			to := e.Other(from)
			if !visited[to] {
				heap.Push(pq, candidate{weight: e.Weight, from: from, to: to, seq: i})
			}
		}
	}

	// 3. Grow a single tree from start until the heap runs dry.
	grow := func(start int) {
		visited[start] = true
		push(start)
		for pq.Len() > 0 && len(mst) < n-1 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			mst = append(mst, core.Edge{Weight: c.weight, U: c.from, V: c.to})
			totalWeight += c.weight
			push(c.to)
		}
		*pq = (*pq)[:0]
	}

	grow(root)
	// 4. Remaining components, smallest vertex first.
	for v := 0; v < n && len(mst) < n-1; v++ {
		if !visited[v] {
			grow(v)
		}
	}

	// 5. Forest result.
	if o.Spanning && len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is a heap entry: an edge seen from the growing tree.
type candidate struct {
	weight   float64
	from, to int
	seq      int // input position, the tie-break
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// weight and then by input position.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then input position, so equal weights pop deterministically.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
