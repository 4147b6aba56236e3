package dsu

import (
	"errors"

	"github.com/katalvlaran/disjointset/unionfind"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrOutOfRange indicates a Static index outside [0, n).
	ErrOutOfRange = errors.New("dsu: index out of range")

	// ErrInvalidKey indicates a Dynamic key that cannot serve as a map key.
	ErrInvalidKey = errors.New("dsu: invalid key")

	// ErrInvalidArgument indicates an invalid construction argument, such as a negative size.
	ErrInvalidArgument = errors.New("dsu: invalid argument")
)

// Set is the surface shared by Static (K = int) and Dynamic[K].
type Set[K comparable] interface {
	// Find returns the representative of k's set.
	Find(k K) (K, error)
	// Union merges the sets of a and b. Repeating it is a no-op.
	Union(a, b K) error
	// Match reports whether a and b share a set.
	Match(a, b K) (bool, error)
	// Sets returns every set as a slice of keys, in no particular order.
	Sets() [][]K
	// Len returns the number of keys in the universe.
	Len() int
	// Count returns the number of disjoint sets.
	Count() int
}

var (
	_ Set[int]    = (*Static)(nil)
	_ Set[string] = (*Dynamic[string])(nil)
)

// Option configures a Static or Dynamic set at construction.
type Option func(*Options)

// Options holds tunables shared by both forms.
type Options struct {
	// Strategy is the path compression used by Find. Default unionfind.Full.
	Strategy unionfind.Strategy

	// Capacity pre-sizes a Dynamic set for this many keys. Static ignores it.
	Capacity int
}

// DefaultOptions returns full compression and no preallocation.
func DefaultOptions() Options {
	return Options{
		Strategy: unionfind.Full,
		Capacity: 0,
	}
}

// WithStrategy selects the path compression strategy.
func WithStrategy(s unionfind.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithCapacity pre-sizes a Dynamic set's arrays and bimap for c keys.
// Negative values are ignored.
func WithCapacity(c int) Option {
	return func(o *Options) {
		if c > 0 {
			o.Capacity = c
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
