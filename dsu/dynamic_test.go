package dsu_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjointset/dsu"
)

func TestDynamic_FindNewElement(t *testing.T) {
	d := dsu.NewDynamic[string]()
	got, err := d.Find("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got, "new element's representative should be itself")
	assert.True(t, d.Contains("a"))
	assert.Equal(t, 1, d.Len())
}

func TestDynamic_ScenarioB(t *testing.T) {
	d := dsu.NewDynamic[string]()

	ok, err := d.Match("apple", "banana")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Union("apple", "banana"))
	ok, err = d.Match("apple", "banana")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Union("banana", "cherry"))
	ok, err = d.Match("apple", "cherry")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Match("apple", "date")
	require.NoError(t, err)
	assert.False(t, ok)

	// Match registered "date" as a singleton.
	assert.Equal(t, [][]string{{"apple", "banana", "cherry"}, {"date"}}, sortedStrings(d.Sets()))
}

func TestDynamic_ScenarioC_RepeatedUnion(t *testing.T) {
	d := dsu.NewDynamic[string]()
	require.NoError(t, d.Union("a", "b"))
	require.NoError(t, d.Union("a", "b"))
	require.NoError(t, d.Union("b", "a"))

	ok, err := d.Match("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [][]string{{"a", "b"}}, sortedStrings(d.Sets()))
	assert.Equal(t, 1, d.Count())
}

func TestDynamic_Sets(t *testing.T) {
	d := dsu.NewDynamic[string]()
	for _, k := range []string{"x", "y", "z", "w"} {
		_, err := d.Find(k)
		require.NoError(t, err)
	}
	assert.Equal(t, [][]string{{"w"}, {"x"}, {"y"}, {"z"}}, sortedStrings(d.Sets()))

	require.NoError(t, d.Union("x", "y"))
	require.NoError(t, d.Union("z", "w"))
	assert.Equal(t, [][]string{{"w", "z"}, {"x", "y"}}, sortedStrings(d.Sets()))
}

func TestDynamic_EmptySets(t *testing.T) {
	d := dsu.NewDynamic[int]()
	assert.Empty(t, d.Sets())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains(0))
}

func TestDynamic_ContainsDoesNotRegister(t *testing.T) {
	d := dsu.NewDynamic[string]()
	assert.False(t, d.Contains("ghost"))
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Sets())
}

func TestDynamic_GrowthKeepsUnions(t *testing.T) {
	d := dsu.NewDynamic[int](dsu.WithCapacity(2))
	require.NoError(t, d.Union(0, 1))
	for i := 2; i < 1000; i++ {
		_, err := d.Find(i)
		require.NoError(t, err)
	}
	ok, err := d.Match(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1000, d.Len())
	assert.Equal(t, 999, d.Count())
}

func TestDynamic_InvalidKeys(t *testing.T) {
	d := dsu.NewDynamic[any]()
	require.NoError(t, d.Union("a", 1))

	cases := map[string]any{
		"slice":                      []int{1},
		"map":                        map[string]int{},
		"func":                       func() {},
		"struct-of-map":              struct{ M map[string]int }{},
		"NaN":                        math.NaN(),
		"array-with-NaN":             [2]float64{1, math.NaN()},
		"empty-slice-array":          [0][]int{},
		"struct-of-empty-func-array": struct{ A [0]func() }{},
		"struct-of-any-slice":        struct{ V any }{V: []int{1}},
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = d.Find(bad) })
			assert.ErrorIs(t, err, dsu.ErrInvalidKey)
			assert.ErrorIs(t, d.Union("fresh", bad), dsu.ErrInvalidKey)
			assert.ErrorIs(t, d.Union(bad, "fresh"), dsu.ErrInvalidKey)
			_, err = d.Match("fresh", bad)
			assert.ErrorIs(t, err, dsu.ErrInvalidKey)
			assert.False(t, d.Contains(bad))

			// Nothing was registered by the failed calls.
			assert.False(t, d.Contains("fresh"))
			assert.Equal(t, 2, d.Len())
		})
	}
}

func TestDynamic_InterfaceKeys(t *testing.T) {
	d := dsu.NewDynamic[any]()

	got, err := d.Find(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Keys of different dynamic types are distinct even when they print alike.
	require.NoError(t, d.Union(1, "1"))
	ok, err := d.Match(int64(1), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, d.Len())

	type point struct{ X, Y int }
	require.NoError(t, d.Union(point{1, 2}, nil))
	ok, err = d.Match(nil, point{1, 2})
	require.NoError(t, err)
	assert.True(t, ok)

	type box struct{ V any }
	_, err = d.Find(box{})
	require.NoError(t, err)
	_, err = d.Find(box{V: []int{1}})
	assert.ErrorIs(t, err, dsu.ErrInvalidKey)
	assert.True(t, d.Contains(box{}))
}

func TestDynamic_FloatKeys(t *testing.T) {
	d := dsu.NewDynamic[float64]()
	require.NoError(t, d.Union(0.5, 1.5))
	_, err := d.Find(math.NaN())
	assert.ErrorIs(t, err, dsu.ErrInvalidKey)
	assert.Equal(t, 2, d.Len())

	// +0 and -0 compare equal and therefore name the same key.
	require.NoError(t, d.Union(0.0, 1.5))
	ok, err := d.Match(math.Copysign(0, -1), 0.5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, d.Len())
}

func TestDynamic_Properties(t *testing.T) {
	d := dsu.NewDynamic[string]()
	r := rand.New(rand.NewSource(3))
	key := func() string { return "k" + strconv.Itoa(r.Intn(60)) }

	referenced := make(map[string]bool)
	for i := 0; i < 300; i++ {
		a, b := key(), key()
		known := referenced[a] && referenced[b]
		before := d.Count()
		referenced[a], referenced[b] = true, true
		require.NoError(t, d.Union(a, b))

		// Group count never grows unless a new key joins the universe.
		if known {
			require.LessOrEqual(t, d.Count(), before)
		}

		// Reflexivity and symmetry.
		ok, err := d.Match(a, a)
		require.NoError(t, err)
		require.True(t, ok)
		ab, err := d.Match(a, b)
		require.NoError(t, err)
		ba, err := d.Match(b, a)
		require.NoError(t, err)
		require.Equal(t, ab, ba)

		// Partition invariant over the referenced keys.
		sets := d.Sets()
		seen := make(map[string]bool)
		for _, g := range sets {
			require.NotEmpty(t, g)
			for _, k := range g {
				require.False(t, seen[k], "key %q in two groups", k)
				seen[k] = true
			}
		}
		require.Equal(t, referenced, seen)
		require.Equal(t, d.Count(), len(sets))
	}
}

func TestDynamic_FindReturnsMemberOfSet(t *testing.T) {
	d := dsu.NewDynamic[string]()
	require.NoError(t, d.Union("p", "q"))
	require.NoError(t, d.Union("r", "q"))

	rep, err := d.Find("r")
	require.NoError(t, err)
	assert.Contains(t, []string{"p", "q", "r"}, rep)
	for _, k := range []string{"p", "q", "r"} {
		got, err := d.Find(k)
		require.NoError(t, err)
		assert.Equal(t, rep, got)
	}
}
