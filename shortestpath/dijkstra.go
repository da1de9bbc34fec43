// Package shortestpath: Dijkstra's algorithm.
package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/routegrid/routegrid/core"
)

// Dijkstra computes the cheapest path from source to target in a graph with
// non-negative edge weights.
//
// The frontier is a min-heap keyed by tentative distance under the lazy
// decrease-key strategy: improvements push duplicate entries and stale ones
// are skipped when popped. A node's distance is final when it is extracted
// for the first time, so the loop stops as soon as the target is finalized.
//
// Preconditions (checked in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source and target must exist in g (ErrNodeNotFound).
//  3. No edge may carry a negative weight (ErrNegativeWeight); an upfront
//     O(E) scan fails fast before any relaxation.
//
// Result: exact minimal total weight plus one shortest path; ties between
// equally short paths resolve by the graph's sorted neighbor order. If the
// target is unreachable, the result is Distance == Unreachable with an empty
// path.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source, target string) (Path, error) {
	if err := validatePair(g, source, target); err != nil {
		return Path{}, err
	}
	// Pre-scan all edges to detect negative weights; behavior on negative
	// input is undefined for Dijkstra, so refuse it outright.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Path{}, fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	dist := make(map[string]int64, n)  // tentative distance; absent ⇒ +∞
	prev := make(map[string]string, n) // predecessor on the best path so far
	done := make(map[string]bool, n)   // finalized nodes

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, &pqItem{label: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.label
		if done[u] {
			continue // stale duplicate from lazy decrease-key
		}
		done[u] = true
		if u == target {
			break // target finalized, remaining frontier is irrelevant
		}

		nbs, err := g.Neighbors(u)
		if err != nil {
			return Path{}, fmt.Errorf("shortestpath: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbs {
			cand := dist[u] + nb.Weight
			cur, seen := dist[nb.Node]
			if seen && cand >= cur {
				continue
			}
			dist[nb.Node] = cand
			prev[nb.Node] = u
			heap.Push(&pq, &pqItem{label: nb.Node, dist: cand})
		}
	}

	if !done[target] {
		return Path{Distance: Unreachable}, nil
	}

	return Path{Distance: dist[target], Nodes: reconstruct(prev, source, target)}, nil
}

// pqItem is a heap entry pairing a node with its tentative distance.
type pqItem struct {
	label string
	dist  int64
}

// nodePQ is a min-heap of *pqItem ordered by dist ascending. Stale entries
// left behind by the lazy decrease-key strategy are filtered on pop.
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
