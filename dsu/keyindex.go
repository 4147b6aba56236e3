package dsu

// keyIndex is the Dynamic key↔index bimap: two total, mutually inverse mappings.
//
// index maps every registered key to its dense index; keys maps each index in
// [0, len(keys)) back to its key. Entries are only ever appended, so index i is
// always the i-th distinct key seen.
type keyIndex[K comparable] struct {
	index map[K]int
	keys  []K
}

func newKeyIndex[K comparable](capacity int) keyIndex[K] {
	return keyIndex[K]{
		index: make(map[K]int, capacity),
		keys:  make([]K, 0, capacity),
	}
}

// lookup returns k's index if it has been registered.
func (m *keyIndex[K]) lookup(k K) (int, bool) {
	i, ok := m.index[k]
	return i, ok
}

// key returns the key registered under index i.
func (m *keyIndex[K]) key(i int) K {
	return m.keys[i]
}

// insert registers k under i, which must be the next unused index.
func (m *keyIndex[K]) insert(k K, i int) {
	if i != len(m.keys) {
		panic("dsu: key index out of sync with forest")
	}
	m.keys = append(m.keys, k)
	m.index[k] = i
}

func (m *keyIndex[K]) len() int {
	return len(m.keys)
}
