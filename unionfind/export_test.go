package unionfind

// White-box bridge for unionfind_test: exposes raw parent links so tests can
// build adversarial shapes that Union by rank would never produce.

// LinkForTest sets parent[x] = p without touching rank or count.
func (f *Forest) LinkForTest(x, p int) {
	f.parent[x] = p
}

// ParentForTest returns parent[x].
func (f *Forest) ParentForTest(x int) int {
	return f.parent[x]
}

// RankForTest returns rank[x].
func (f *Forest) RankForTest(x int) int {
	return f.rank[x]
}
