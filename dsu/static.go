package dsu

import (
	"fmt"

	"github.com/katalvlaran/disjointset/unionfind"
)

// Static is a disjoint set over the fixed universe [0, n).
//
// All n indices exist from construction; the parent and rank arrays are
// allocated once and never resized.
type Static struct {
	forest *unionfind.Forest
	n      int
}

// NewStatic returns a Static set of n singletons.
// n == 0 yields an empty universe; n < 0 fails with ErrInvalidArgument.
//
// Complexity: O(n) time and memory.
func NewStatic(n int, opts ...Option) (*Static, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: size %d is negative", ErrInvalidArgument, n)
	}
	o := gatherOptions(opts)

	return &Static{
		forest: unionfind.New(n, unionfind.WithStrategy(o.Strategy)),
		n:      n,
	}, nil
}

// check rejects indices outside [0, n).
func (s *Static) check(x int) error {
	if x < 0 || x >= s.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, s.n)
	}

	return nil
}

// Find returns the representative of x's set.
//
// Error Conditions:
//   - ErrOutOfRange : x outside [0, n).
//
// Complexity: amortised O(α(n)).
func (s *Static) Find(x int) (int, error) {
	if err := s.check(x); err != nil {
		return 0, err
	}

	return s.forest.Find(x), nil
}

// Union merges the sets containing x and y. Both indices are validated before
// anything is touched, so an out-of-range argument leaves the set unchanged.
// Repeating a union is a no-op.
//
// Error Conditions:
//   - ErrOutOfRange : x or y outside [0, n).
//
// Complexity: amortised O(α(n)). Memory: O(1).
func (s *Static) Union(x, y int) error {
	if err := s.check(x); err != nil {
		return err
	}
	if err := s.check(y); err != nil {
		return err
	}
	s.forest.Union(x, y)

	return nil
}

// Match reports whether x and y share a set.
//
// Error Conditions:
//   - ErrOutOfRange : x or y outside [0, n).
//
// Complexity: amortised O(α(n)).
func (s *Static) Match(x, y int) (bool, error) {
	if err := s.check(x); err != nil {
		return false, err
	}
	if err := s.check(y); err != nil {
		return false, err
	}

	return s.forest.Match(x, y), nil
}

// Sets returns the partition of [0, n). An empty universe yields an empty slice.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (s *Static) Sets() [][]int {
	return s.forest.Groups()
}

// Len returns n.
func (s *Static) Len() int {
	return s.n
}

// Count returns the number of disjoint sets.
func (s *Static) Count() int {
	return s.forest.Count()
}
