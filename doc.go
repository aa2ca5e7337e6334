// Package mstcluster is an in-memory toolkit for minimum spanning trees and
// the single-linkage clustering they induce.
//
// 🚀 What is mstcluster?
//
//	A small, deterministic library that brings together:
//		• Edge model: dense integer vertices, (weight, u, v) edges, validation
//		• Union-Find: path compression + union by size, component labelling
//		• Minimum spanning trees: Kruskal (primary) and Prim, forests on disconnected input
//		• Clustering: cut k-1 heaviest MST edges, cut by height, full dendrogram
//		• Distances: pairwise matrices under Lp metrics (gonum kernels)
//		• Datasets: two moons and Gaussian blobs for fixtures and demos
//
// ✨ Why choose mstcluster?
//
//   - Deterministic – stable tie-breaks, seeded generators, no map-order leaks
//   - Fail fast – every contract violation is a sentinel error (errors.Is)
//   - Small surface – one function per operation, functional options for knobs
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         Vertex, Edge, validation, Dedup and the stable weight order
//	dsu/          DisjointSet (Union-Find)
//	prim_kruskal/ Kruskal, Prim and the Compute dispatcher
//	cluster/      ExtractClusters, CutAt, Linkage, Points pipeline
//	matrix/       Dense distance matrix, Pairwise, metrics
//	builder/      Moons and Blobs point datasets
//	examples/     two-moons clustering program (YAML config, JSON report)
//
// Quick ASCII example:
//
//	    0──1──2        3──4
//	     1   2     7     1
//
//	the MST above has a single heavy edge (2─3, weight 7); cutting it with
//	k=2 yields clusters {0,1,2} and {3,4}.
//
//	go get github.com/katalvlaran/mstcluster
package mstcluster
