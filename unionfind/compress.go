package unionfind

// findFull walks from x to the root, then repoints every visited node at the root.
// Two passes keep the stack flat on long chains.
func (f *Forest) findFull(x int) int {
	path := f.path[:0]
	root := x
	for f.parent[root] != root {
		path = append(path, root)
		root = f.parent[root]
	}

	for _, v := range path {
		f.parent[v] = root
	}
	f.path = path[:0]

	return root
}

// findHalving points every other node on the path at its grandparent.
func (f *Forest) findHalving(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// findSplitting points every node on the path at its grandparent.
func (f *Forest) findSplitting(x int) int {
	for f.parent[x] != x {
		next := f.parent[x]
		f.parent[x] = f.parent[next]
		x = next
	}

	return x
}
