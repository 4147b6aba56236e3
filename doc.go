// Package disjointset is an in-memory union-find engine for grouping things that
// belong together: connected components, equivalence classes, clusters, Kruskal's MST.
//
// What's inside:
//
//	unionfind/    the dense-index Forest: parent/rank arrays, iterative Find with full
//	              path compression (or halving / splitting), Union by rank, Groups
//	dsu/          the public forms: Static over [0, n), Dynamic[K] over any comparable key
//	workload/     reproducible union/find workloads and a timing runner
//	cmd/dsbench/  command-line benchmark comparing forms and compression strategies
//
// This package itself is a thin convenience layer: New picks the Static or Dynamic form
// from a Size, and Version identifies the release for compatibility checks.
//
//	s, _ := disjointset.New(disjointset.Sized(5))   // Static over 0..4
//	d, _ := disjointset.New(disjointset.Unsized)    // Dynamic over int keys
//
// For non-integer keys use dsu.NewDynamic[K]() directly.
//
// Guarantees:
//
//   - Find, Union and Match run in amortised near-constant time (inverse Ackermann).
//   - Sets returns disjoint, non-empty groups covering every known key, in no particular order.
//   - A failing call never leaves partial state behind.
//   - Nothing here is safe for concurrent use without external locking.
//
//	go get github.com/katalvlaran/disjointset
package disjointset
