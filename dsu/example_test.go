package dsu_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/disjointset/dsu"
)

// ExampleStatic groups five indices into two sets.
func ExampleStatic() {
	s, err := dsu.NewStatic(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = s.Union(0, 1)
	_ = s.Union(1, 2)
	_ = s.Union(3, 4)

	same, _ := s.Match(0, 2)
	fmt.Println(same, s.Count())
	fmt.Println(sortedInts(s.Sets()))

	_, err = s.Find(5)
	fmt.Println(err)
	// Output:
	// true 2
	// [[0 1 2] [3 4]]
	// dsu: index out of range: 5 not in [0, 5)
}

// ExampleDynamic connects fruit names registered on the fly.
func ExampleDynamic() {
	d := dsu.NewDynamic[string]()
	_ = d.Union("apple", "banana")
	_ = d.Union("banana", "cherry")

	a, _ := d.Match("apple", "cherry")
	b, _ := d.Match("apple", "date")
	fmt.Println(a, b, d.Len())
	// Output: true false 4
}

// ExampleDynamic_kruskal picks the cheapest edges that join separate components,
// skipping any edge whose endpoints are already connected.
func ExampleDynamic_kruskal() {
	type edge struct {
		from, to string
		weight   int
	}
	edges := []edge{
		{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 2},
		{"B", "D", 3}, {"C", "D", 5}, {"D", "A", 4},
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	d := dsu.NewDynamic[string]()
	total := 0
	for _, e := range edges {
		if joined, _ := d.Match(e.from, e.to); joined {
			continue
		}
		_ = d.Union(e.from, e.to)
		total += e.weight
		fmt.Printf("%s-%s ", e.from, e.to)
	}
	fmt.Println("total:", total)
	// Output: A-C C-B B-D total: 6
}
