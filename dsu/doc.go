// Package dsu provides a disjoint-set (union-find) structure over dense integer
// elements 0..n-1.
//
// What & Why
//
//	A DisjointSet maintains a partition of its elements into components and
//	answers two questions quickly:
//	  • Find(v)     – which component (representative root) holds v?
//	  • Union(a, b) – merge the components of a and b; report false if they
//	                  were already one component.
//
//	The false result of Union is exactly the cycle test Kruskal's algorithm
//	needs: an edge whose endpoints already share a root would close a cycle.
//
// Optimizations (both always on):
//
//   - Path compression: Find re-points every node it visits straight at the root.
//   - Union by size: the root of the smaller component is attached under the
//     root of the larger one. On equal sizes the root of b goes under the root
//     of a, so repeated runs over the same input give the same forest.
//
//     Together they give amortized O(α(n)) per operation (α = inverse Ackermann).
//
// Invariants:
//
//   - Following parent pointers from any element ends at the unique root of its
//     component; every element belongs to exactly one component.
//   - Count() starts at n and decreases by exactly one per successful Union.
//   - Path compression never changes the root Find reports.
//
// Errors:
//
//	ErrBadSize    – New(n) with n < 0.
//	ErrOutOfRange – element outside [0, n) passed to Find/Union/Connected/SizeOf.
//
// Concurrency: a DisjointSet is not safe for concurrent use. Find mutates the
// forest, so even lookups must be serialized by the caller.
package dsu
