package unionfind

// minGrowth is the smallest capacity a growing Forest reallocates to.
const minGrowth = 8

// Forest is a union-find structure over the dense indices [0, Len()).
//
// parent[i] == i marks a root. rank is an upper bound on the height of the tree
// below a root and is only consulted to decide attachment direction in Union.
// count tracks the number of roots so Count is O(1).
type Forest struct {
	parent   []int
	rank     []int
	count    int
	strategy Strategy

	// path is scratch space reused by full compression to avoid per-call allocation.
	path []int
}

// New returns a Forest of n singletons {0}, {1}, …, {n-1}.
// Like make, it panics if n is negative; callers validate sizes first.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *Forest {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := n
	if o.Capacity > c {
		c = o.Capacity
	}

	f := &Forest{
		parent:   make([]int, n, c),
		rank:     make([]int, n, c),
		count:    n,
		strategy: o.Strategy,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len returns the number of indices known to the forest.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Cap returns the number of indices the forest can hold before Add reallocates.
func (f *Forest) Cap() int {
	return cap(f.parent)
}

// Count returns the number of disjoint sets.
func (f *Forest) Count() int {
	return f.count
}

// Strategy reports the compression strategy used by Find.
func (f *Forest) Strategy() Strategy {
	return f.strategy
}

// Add appends a new singleton and returns its index, which is always the previous Len().
// Existing parent and rank entries are preserved across growth.
//
// Complexity: amortised O(1).
func (f *Forest) Add() int {
	i := len(f.parent)
	if i == cap(f.parent) {
		f.grow()
	}

	f.parent = append(f.parent, i)
	f.rank = append(f.rank, 0)
	f.count++

	return i
}

// grow doubles the backing capacity, copying every entry.
func (f *Forest) grow() {
	c := 2 * cap(f.parent)
	if c < minGrowth {
		c = minGrowth
	}

	parent := make([]int, len(f.parent), c)
	copy(parent, f.parent)
	rank := make([]int, len(f.rank), c)
	copy(rank, f.rank)

	f.parent, f.rank = parent, rank
}

// Find returns the root of the set containing x and compresses the path walked
// according to the forest's Strategy. The root returned is the one an uncompressed
// walk would reach; compression only changes the representation.
//
// Complexity: amortised O(α(m)) with union by rank, O(1) extra memory (Full reuses a scratch buffer).
func (f *Forest) Find(x int) int {
	switch f.strategy {
	case Halving:
		return f.findHalving(x)
	case Splitting:
		return f.findSplitting(x)
	default:
		return f.findFull(x)
	}
}

// Union merges the sets containing x and y and reports whether a merge happened.
//
// Steps:
//  1. rx, ry = Find(x), Find(y); if rx == ry the call is a no-op and returns false.
//  2. The root of lower rank is attached under the root of higher rank.
//  3. On equal rank, ry goes under rx and rank[rx] grows by one.
//  4. Count drops by one.
//
// Complexity: amortised O(α(m)). Memory: O(1).
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.count--

	return true
}

// Match reports whether x and y belong to the same set.
//
// Complexity: amortised O(α(m)).
func (f *Forest) Match(x, y int) bool {
	return f.Find(x) == f.Find(y)
}
