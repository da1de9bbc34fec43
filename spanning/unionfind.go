// Package spanning: disjoint-set structure backing Kruskal.
package spanning

// unionFind is a disjoint-set over node labels with path compression and
// union by rank, giving near-O(1) amortized find/union.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

// newUnionFind seeds one singleton set per label.
func newUnionFind(labels []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(labels)),
		rank:   make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		uf.parent[l] = l
	}

	return uf
}

// find returns the set representative of u, compressing the walked path.
// Iterative to avoid recursion on degenerate chains.
func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		// Point u at its grandparent; halves the path on each pass.
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, attaching the smaller-rank root under
// the larger. Returns false when u and v already share a set.
func (uf *unionFind) union(u, v string) bool {
	rootU, rootV := uf.find(u), uf.find(v)
	if rootU == rootV {
		return false
	}
	if uf.rank[rootU] < uf.rank[rootV] {
		uf.parent[rootU] = rootV
	} else {
		uf.parent[rootV] = rootU
		if uf.rank[rootU] == uf.rank[rootV] {
			uf.rank[rootU]++
		}
	}

	return true
}
