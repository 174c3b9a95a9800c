package unionfind

// Forest is a disjoint-set forest over dense ids with a payload of type P per id.
type Forest[P any] struct {
	parent  []int
	rank    []int
	payload []P
	sets    int
}

// New returns an empty Forest with room for capacity elements.
func New[P any](capacity int) *Forest[P] {
	if capacity < 0 {
		capacity = 0
	}
	return &Forest[P]{
		parent:  make([]int, 0, capacity),
		rank:    make([]int, 0, capacity),
		payload: make([]P, 0, capacity),
	}
}

// MakeSet creates a singleton set owning payload and returns its id.
func (f *Forest[P]) MakeSet(payload P) int {
	id := len(f.parent)
	f.parent = append(f.parent, id)
	f.rank = append(f.rank, 0)
	f.payload = append(f.payload, payload)
	f.sets++

	return id
}

// Find returns the representative of the set containing x.
//
// Steps:
//  1. Walk parent links from x up to the root.
//  2. Walk the same path again, re-pointing every node directly at the root.
//
// Complexity: O(α(n)) amortized together with union by rank. Memory: O(1).
// x must be an id returned by MakeSet; other values panic with an index error.
func (f *Forest[P]) Find(x int) int {
	// 1. Locate the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Full path compression.
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge happened.
//
// Steps:
//  1. Find both roots; equal roots mean a and b already share a set, return false.
//  2. Attach the lower-rank root under the higher-rank root.
//  3. On a rank tie a's root becomes the parent and its rank grows by one.
//  4. One fewer disjoint set remains.
//
// Complexity: O(α(n)) amortized. Memory: O(1).
func (f *Forest[P]) Union(a, b int) bool {
	// 1. Roots.
	rootA := f.Find(a)
	rootB := f.Find(b)
	if rootA == rootB {
		return false
	}
	// 2-3. Union by rank.
	switch {
	case f.rank[rootA] < f.rank[rootB]:
		f.parent[rootA] = rootB
	case f.rank[rootA] > f.rank[rootB]:
		f.parent[rootB] = rootA
	default:
		f.parent[rootB] = rootA
		f.rank[rootA]++
	}
	// 4. Count the merge.
	f.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (f *Forest[P]) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Payload returns the payload owned by the representative of x's set.
func (f *Forest[P]) Payload(x int) P {
	return f.payload[f.Find(x)]
}

// Len returns the number of elements created by MakeSet.
func (f *Forest[P]) Len() int { return len(f.parent) }

// Sets returns the current number of disjoint sets.
func (f *Forest[P]) Sets() int { return f.sets }

// Rank returns the rank stored for x. Meaningful only for representatives.
func (f *Forest[P]) Rank(x int) int { return f.rank[x] }
