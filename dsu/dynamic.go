package dsu

import (
	"reflect"

	"github.com/katalvlaran/disjointset/unionfind"
)

// Dynamic is a disjoint set over arbitrary comparable keys.
//
// Keys are registered on first reference by Find, Union or Match: the key gets the
// next dense index, a fresh singleton in the forest and an entry in both directions
// of the bimap. The universe only grows.
type Dynamic[K comparable] struct {
	forest *unionfind.Forest
	keys   keyIndex[K]

	// check is set when K can carry values that are not valid map keys.
	check bool
}

// NewDynamic returns an empty Dynamic set.
func NewDynamic[K comparable](opts ...Option) *Dynamic[K] {
	o := gatherOptions(opts)

	return &Dynamic[K]{
		forest: unionfind.New(0,
			unionfind.WithStrategy(o.Strategy),
			unionfind.WithCapacity(o.Capacity),
		),
		keys:  newKeyIndex[K](o.Capacity),
		check: needsKeyCheck(reflect.TypeOf((*K)(nil)).Elem()),
	}
}

// validate returns ErrInvalidKey for unusable keys. It never mutates.
func (d *Dynamic[K]) validate(k K) error {
	if !d.check {
		return nil
	}

	return checkKey(k)
}

// intern returns k's index, registering k first if it is new.
func (d *Dynamic[K]) intern(k K) int {
	if i, ok := d.keys.lookup(k); ok {
		return i
	}
	i := d.forest.Add()
	d.keys.insert(k, i)

	return i
}

// Find returns the representative key of k's set. An unseen k is registered and
// returned as its own representative.
//
// Error Conditions:
//   - ErrInvalidKey : k is not hashable or not equal to itself; nothing is registered.
//
// Complexity: amortised O(α(m)) plus one map lookup; O(1) amortised on registration.
func (d *Dynamic[K]) Find(k K) (K, error) {
	if err := d.validate(k); err != nil {
		var zero K
		return zero, err
	}

	return d.keys.key(d.forest.Find(d.intern(k))), nil
}

// Union merges the sets of a and b, registering either key if needed.
//
// Steps:
//  1. Validate a, then b; an invalid key returns ErrInvalidKey before any registration.
//  2. Intern a, then b: unseen keys get the next index and a fresh singleton.
//  3. Merge the two roots by rank. Repeating a union is a no-op.
//
// Complexity: amortised O(α(m)) plus two map lookups.
func (d *Dynamic[K]) Union(a, b K) error {
	if err := d.validate(a); err != nil {
		return err
	}
	if err := d.validate(b); err != nil {
		return err
	}
	d.forest.Union(d.intern(a), d.intern(b))

	return nil
}

// Match reports whether a and b share a set, registering either key if needed.
//
// Error Conditions:
//   - ErrInvalidKey : a or b is not a usable key; nothing is registered.
//
// Complexity: amortised O(α(m)) plus two map lookups.
func (d *Dynamic[K]) Match(a, b K) (bool, error) {
	if err := d.validate(a); err != nil {
		return false, err
	}
	if err := d.validate(b); err != nil {
		return false, err
	}

	return d.forest.Match(d.intern(a), d.intern(b)), nil
}

// Contains reports whether k has been registered. It never registers k and
// reports false for invalid keys.
func (d *Dynamic[K]) Contains(k K) bool {
	if d.validate(k) != nil {
		return false
	}
	_, ok := d.keys.lookup(k)

	return ok
}

// Sets returns every set as a slice of the original keys.
//
// Complexity: O(m·α(m)) time, O(m) memory.
func (d *Dynamic[K]) Sets() [][]K {
	groups := d.forest.Groups()
	out := make([][]K, len(groups))
	for i, g := range groups {
		set := make([]K, len(g))
		for j, idx := range g {
			set[j] = d.keys.key(idx)
		}
		out[i] = set
	}

	return out
}

// Len returns the number of registered keys.
func (d *Dynamic[K]) Len() int {
	return d.keys.len()
}

// Count returns the number of disjoint sets.
func (d *Dynamic[K]) Count() int {
	return d.forest.Count()
}
