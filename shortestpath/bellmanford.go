// Package shortestpath: Bellman-Ford with negative-cycle detection.
package shortestpath

import (
	"fmt"

	"github.com/routegrid/routegrid/core"
)

// arc is one direction of an undirected edge, materialized for relaxation.
type arc struct {
	from, to string
	weight   int64
}

// BellmanFord computes the cheapest path from source to target, tolerating
// negative edge weights.
//
// Every undirected edge is relaxed in both directions for up to |V|-1 rounds;
// a round that improves nothing ends the loop early. One additional pass then
// checks whether any arc still relaxes; if so, a negative-weight cycle is
// reachable from the source and the call fails with ErrNegativeCycle.
//
// The result shape is identical to Dijkstra's: exact minimal weight plus one
// shortest path reconstructed via predecessor links, or Distance ==
// Unreachable with an empty path when no route exists. On all-non-negative
// input the two algorithms agree exactly.
//
// Complexity: O(V · E) time, O(V + E) space.
func BellmanFord(g *core.Graph, source, target string) (Path, error) {
	if err := validatePair(g, source, target); err != nil {
		return Path{}, err
	}

	// Materialize both directions of every undirected edge once.
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs,
			arc{from: e.From, to: e.To, weight: e.Weight},
			arc{from: e.To, to: e.From, weight: e.Weight},
		)
	}

	n := g.NodeCount()
	dist := make(map[string]int64, n)  // absent ⇒ +∞
	prev := make(map[string]string, n) // predecessor links for reconstruction
	dist[source] = 0

	for round := 0; round < n-1; round++ {
		changed := false
		for _, a := range arcs {
			du, ok := dist[a.from]
			if !ok {
				continue // source of this arc not yet reached
			}
			cand := du + a.weight
			if cur, ok := dist[a.to]; !ok || cand < cur {
				dist[a.to] = cand
				prev[a.to] = a.from
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Verification pass: any arc that still relaxes closes a cycle whose
	// traversal strictly decreases distance.
	for _, a := range arcs {
		du, ok := dist[a.from]
		if !ok {
			continue
		}
		if cur, ok := dist[a.to]; !ok || du+a.weight < cur {
			return Path{}, fmt.Errorf("%w: via %s-%s", ErrNegativeCycle, a.from, a.to)
		}
	}

	d, ok := dist[target]
	if !ok {
		return Path{Distance: Unreachable}, nil
	}

	return Path{Distance: d, Nodes: reconstruct(prev, source, target)}, nil
}
