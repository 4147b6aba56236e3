// Package unionfind implements the dense-index union-find forest shared by the
// static and dynamic disjoint sets of github.com/katalvlaran/disjointset.
//
// What:
//
//   - Forest tracks a partition of the indices [0, m) using a parent array and a rank array.
//   - Find returns the root of an index and compresses the traversed path.
//   - Union merges two sets by rank; Match reports whether two indices share a root.
//   - Groups materialises the current partition on demand.
//   - Add appends a fresh singleton, growing the backing arrays geometrically.
//
// Why:
//
//   - Connectivity queries in amortised O(α(m)) time (α = inverse Ackermann) with
//     path compression plus union by rank.
//   - One index-level engine serves both a fixed universe and a lazily growing one,
//     so key translation lives entirely in the adapters (package dsu).
//
// Compression strategies:
//
//   - Full (default): two passes, walk to the root then repoint every visited node.
//   - Halving:        every other node on the path is repointed to its grandparent.
//   - Splitting:      every node on the path is repointed to its grandparent.
//
// All strategies are iterative; none recurses, so adversarial chains cannot blow the stack.
// Given the same sequence of operations, every strategy yields the same partition; only the
// internal tree shape differs.
//
// Complexity:
//
//   - Find, Union, Match: amortised O(α(m)); O(log m) worst case without compression history.
//   - Add:                amortised O(1).
//   - Groups:             O(m).
//   - Memory:             O(m).
//
// Indices passed to a Forest are trusted: validation belongs to the caller.
// A Forest is not safe for concurrent use.
package unionfind
