package percolation

// unionFind is a weighted quick-union structure with path halving.
// Elements are dense integers [0, n).
type unionFind struct {
	parent []int
	size   []int
}

// newUnionFind returns n singleton components.
func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size}
}

// find returns the component root of p, halving the path on the way up.
// Complexity: O(α(n)) amortized.
func (u *unionFind) find(p int) int {
	for p != u.parent[p] {
		u.parent[p] = u.parent[u.parent[p]] // path halving
		p = u.parent[p]
	}
	return p
}

// union merges the components of p and q, attaching the smaller tree
// under the larger.
// Complexity: O(α(n)) amortized.
func (u *unionFind) union(p, q int) {
	rp, rq := u.find(p), u.find(q)
	if rp == rq {
		return
	}
	if u.size[rp] < u.size[rq] {
		rp, rq = rq, rp
	}
	u.parent[rq] = rp
	u.size[rp] += u.size[rq]
}

// connected reports whether p and q share a component.
// Complexity: O(α(n)) amortized.
func (u *unionFind) connected(p, q int) bool {
	return u.find(p) == u.find(q)
}
