package unionfind

// Groups returns the current partition of [0, Len()) as one slice per set.
//
// Every index is passed through Find first, so the call fully compresses the forest.
// Groups are pairwise disjoint and non-empty and together cover every index.
// Within a group indices ascend; the order of groups is unspecified.
//
// Complexity: O(m·α(m)) time, O(m) memory.
func (f *Forest) Groups() [][]int {
	n := len(f.parent)
	if n == 0 {
		return [][]int{}
	}

	// slot[root] is the position of root's group in out, or -1 before first sight.
	slot := make([]int, n)
	for i := range slot {
		slot[i] = -1
	}

	out := make([][]int, 0, f.count)
	for i := 0; i < n; i++ {
		r := f.Find(i)
		if slot[r] < 0 {
			slot[r] = len(out)
			out = append(out, nil)
		}
		out[slot[r]] = append(out[slot[r]], i)
	}

	return out
}

// Roots returns the root of every index, compressing each path on the way.
// roots[i] == roots[j] exactly when i and j share a set.
func (f *Forest) Roots() []int {
	roots := make([]int, len(f.parent))
	for i := range roots {
		roots[i] = f.Find(i)
	}

	return roots
}
