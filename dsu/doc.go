// Package dsu provides the two public forms of the disjoint-set engine:
// Static over a fixed integer universe and Dynamic over arbitrary comparable keys.
//
// What:
//
//   - Static covers the indices [0, n) fixed at construction. Every index exists up front.
//   - Dynamic[K] registers keys lazily on first reference, assigning dense indices in
//     first-seen order through a key↔index bimap.
//   - Both delegate connectivity to a single *unionfind.Forest and expose the same surface,
//     captured by the Set[K] interface: Find, Union, Match, Sets, Len, Count.
//
// Errors:
//
//   - ErrOutOfRange:      Static index outside [0, n).
//   - ErrInvalidKey:      Dynamic key that cannot be hashed or is not equal to itself.
//   - ErrInvalidArgument: negative size passed to NewStatic.
//
// Every failing call leaves the structure exactly as it was: arguments are validated
// before any registration, compression or merge happens.
//
// Sets returns groups in no particular order. Callers that need a stable order sort the
// result themselves.
//
// Neither form is safe for concurrent use. Guard an instance with a mutex if several
// goroutines touch it; even Find mutates (path compression).
package dsu
