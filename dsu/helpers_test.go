package dsu_test

import (
	"sort"
)

// sortedInts normalises a partition of ints: each group ascending, groups by first element.
func sortedInts(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		c := append([]int(nil), g...)
		sort.Ints(c)
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// sortedStrings normalises a partition of strings the same way as sortedInts.
func sortedStrings(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		c := append([]string(nil), g...)
		sort.Strings(c)
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
