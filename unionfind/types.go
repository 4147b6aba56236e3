package unionfind

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not recognise.
var ErrUnknownStrategy = errors.New("unionfind: unknown compression strategy")

// Strategy selects how Find shortens the path it walks.
type Strategy int

const (
	// Full repoints every node on the path directly to the root.
	Full Strategy = iota
	// Halving repoints every other node on the path to its grandparent.
	Halving
	// Splitting repoints every node on the path to its grandparent.
	Splitting
)

// Strategies lists every supported Strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Full, Halving, Splitting}
}

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Full:
		return "full"
	case Halving:
		return "halving"
	case Splitting:
		return "splitting"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name produced by Strategy.String back to its Strategy.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return Full, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures a Forest at construction.
type Option func(*Options)

// Options holds the tunables applied by New.
type Options struct {
	// Strategy chooses the path compression performed by Find. Default is Full.
	Strategy Strategy

	// Capacity preallocates backing storage for this many indices.
	// Values smaller than the initial size are ignored.
	Capacity int
}

// DefaultOptions returns Options with full compression and no extra capacity.
func DefaultOptions() Options {
	return Options{
		Strategy: Full,
		Capacity: 0,
	}
}

// WithStrategy selects the compression strategy used by Find.
// Unknown values fall back to Full.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Full, Halving, Splitting:
			o.Strategy = s
		default:
			o.Strategy = Full
		}
	}
}

// WithCapacity preallocates storage for c indices so that the first c calls to Add
// do not reallocate. Negative values are ignored.
func WithCapacity(c int) Option {
	return func(o *Options) {
		if c > 0 {
			o.Capacity = c
		}
	}
}
