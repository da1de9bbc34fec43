// Package spanning: Kruskal's minimum-spanning-forest algorithm.
package spanning

import (
	"errors"
	"fmt"
	"sort"

	"github.com/routegrid/routegrid/core"
)

// Sentinel errors for spanning-forest computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spanning: graph is nil")

	// ErrNegativeWeight is returned when the graph carries a negative edge
	// weight; spanning-forest weights must be non-negative.
	ErrNegativeWeight = errors.New("spanning: negative edge weight")
)

// Forest is the result of a minimum-spanning-forest computation: the selected
// edges, their exact weight sum, and the number of trees (one per connected
// component of the input graph).
type Forest struct {
	Edges       []core.Edge
	TotalWeight int64
	Trees       int
}

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Collect all edges and sort ascending by weight; ties order
//     lexicographically by the (From, To) pair, so equal-weight inputs always
//     select the same forest.
//  2. Seed a union-find with every node.
//  3. Walk the sorted edges; an edge whose endpoints lie in different sets
//     joins the forest and merges them. Stop once one set remains.
//
// A disconnected graph yields a forest with Trees > 1 rather than an error;
// the caller need not pre-check connectivity. An empty graph yields an empty
// forest with zero trees.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) (Forest, error) {
	if g == nil {
		return Forest{}, ErrGraphNil
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return Forest{Edges: []core.Edge{}}, nil
	}

	edges := g.Edges()
	for _, e := range edges {
		if e.Weight < 0 {
			return Forest{}, fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// Ascending weight; lexicographic (From, To) breaks ties deterministically.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	uf := newUnionFind(nodes)
	forest := Forest{Edges: make([]core.Edge, 0, len(nodes)-1)}
	components := len(nodes)

	for _, e := range edges {
		if !uf.union(e.From, e.To) {
			continue // endpoints already connected; edge would close a cycle
		}
		forest.Edges = append(forest.Edges, e)
		forest.TotalWeight += e.Weight
		components--
		if components == 1 {
			break
		}
	}
	forest.Trees = components

	return forest, nil
}
