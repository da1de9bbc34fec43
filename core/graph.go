// Package core: mutation (construction-time) and query methods on Graph.
package core

import (
	"fmt"
	"sort"
)

// AddNode registers a node label. Adding an already-present label is a no-op.
// Returns ErrEmptyLabel for the empty string.
// Complexity: O(1)
func (g *Graph) AddNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if _, ok := g.nodes[label]; ok {
		return nil
	}
	g.nodes[label] = struct{}{}
	g.adj[label] = make(map[string]int64)

	return nil
}

// AddEdge inserts the undirected edge a-b with the given weight.
//
// It fails with ErrInvalidEdge when a == b, when weight is negative and the
// graph was not built WithNegativeWeights, or when either endpoint is absent.
// Inserting an edge for an unordered pair that already has one overwrites the
// stored weight silently; symmetric-matrix input presents each pair twice.
// Complexity: O(1)
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == b {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, a)
	}
	if weight < 0 && !g.allowNegative {
		return fmt.Errorf("%w: negative weight %d on %s-%s", ErrInvalidEdge, weight, a, b)
	}
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: endpoint %q not in graph", ErrInvalidEdge, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: endpoint %q not in graph", ErrInvalidEdge, b)
	}
	if _, ok := g.adj[a][b]; !ok {
		g.edgeCount++
	}
	g.adj[a][b] = weight
	g.adj[b][a] = weight

	return nil
}

// Contains reports whether the label is a node of the graph.
// Complexity: O(1)
func (g *Graph) Contains(label string) bool {
	_, ok := g.nodes[label]

	return ok
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of unordered edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Weight returns the weight of edge a-b and whether that edge exists.
// Complexity: O(1)
func (g *Graph) Weight(a, b string) (int64, bool) {
	w, ok := g.adj[a][b]

	return w, ok
}

// Nodes returns all node labels in sorted order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	labels := make([]string, 0, len(g.nodes))
	for label := range g.nodes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

// Edges returns every undirected edge exactly once, normalized so that
// From < To and sorted lexicographically by (From, To).
// Complexity: O(V + E log E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a, row := range g.adj {
		for b, w := range row {
			if a < b {
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the (adjacent node, weight) pairs for the given node,
// sorted by neighbor label. The sorted order is what makes traversal
// tie-breaking reproducible across runs. Returns ErrUnknownNode if the node
// is absent.
// Complexity: O(d log d), where d is the node's degree.
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	row, ok := g.adj[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, label)
	}
	out := make([]Neighbor, 0, len(row))
	for b, w := range row {
		out = append(out, Neighbor{Node: b, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })

	return out, nil
}
