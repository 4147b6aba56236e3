// Package workload generates reproducible union/find operation streams and times
// them against the disjoint-set forms of github.com/katalvlaran/disjointset.
//
// A Scenario fixes the fraction of unions in the stream (the rest are finds).
// DefaultScenarios spans union-heavy to find-heavy mixes. Generate draws a stream
// from a seeded *rand.Rand; Run applies it to any Target; Runner sweeps a matrix of
// scenarios × forms × compression strategies, feeding every cell of one scenario
// the identical stream so that timings are comparable.
//
// The package only touches the public Find/Union/Sets surface.
package workload
