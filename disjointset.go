package disjointset

import (
	"fmt"

	"github.com/katalvlaran/disjointset/dsu"
)

// Size chooses between the two forms built by New.
// Use Sized(n) for a fixed universe and Unsized for a growing one.
type Size struct {
	n     int
	sized bool
}

// Unsized selects the Dynamic form.
var Unsized = Size{}

// Sized selects the Static form over [0, n).
func Sized(n int) Size {
	return Size{n: n, sized: true}
}

// IsSized reports whether s selects the Static form.
func (s Size) IsSized() bool {
	return s.sized
}

// N returns the fixed universe size, or -1 for Unsized.
func (s Size) N() int {
	if !s.sized {
		return -1
	}

	return s.n
}

// String renders the size as "n" or "unsized".
func (s Size) String() string {
	if !s.sized {
		return "unsized"
	}

	return fmt.Sprintf("%d", s.n)
}

// New returns a *dsu.Static for Sized(n) and a *dsu.Dynamic[int] for Unsized.
// A negative n fails with dsu.ErrInvalidArgument.
func New(size Size, opts ...dsu.Option) (dsu.Set[int], error) {
	if !size.sized {
		return dsu.NewDynamic[int](opts...), nil
	}

	s, err := dsu.NewStatic(size.n, opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}
