// Package core: type declarations, sentinel errors, and constructors.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a node label is the empty string.
	ErrEmptyLabel = errors.New("core: empty node label")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidEdge indicates a malformed edge at construction time:
	// a self-loop, a negative weight (unless WithNegativeWeights is set),
	// or an endpoint absent from the graph.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is an undirected, weighted connection between two distinct nodes.
// Edges returned by Graph.Edges are normalized so that From < To.
type Edge struct {
	// From is one endpoint's label.
	From string

	// To is the other endpoint's label.
	To string

	// Weight is the travel distance between the endpoints.
	Weight int64
}

// Neighbor pairs an adjacent node with the weight of the connecting edge.
type Neighbor struct {
	// Node is the adjacent node's label.
	Node string

	// Weight is the weight of the edge leading to Node.
	Weight int64
}

// GraphOption configures behavior of a Graph before construction.
type GraphOption func(g *Graph)

// WithNegativeWeights permits negative edge weights. Such graphs are only
// usable by Bellman-Ford; Dijkstra and Kruskal reject them.
func WithNegativeWeights() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// Graph is the in-memory weighted-graph data structure.
//
// It is undirected and simple: adjacency is symmetric, both directions carry
// the identical weight, and there is at most one edge per unordered pair.
// A Graph is built once and read-only thereafter; queries never mutate it.
type Graph struct {
	// Configuration flags
	allowNegative bool // permit negative edge weights

	// Storage
	nodes     map[string]struct{}         // node label set
	adj       map[string]map[string]int64 // adj[a][b] = weight, mirrored for both directions
	edgeCount int                         // number of unordered pairs
}

// NewGraph creates an empty Graph with the given options.
// By default negative edge weights are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Build assembles a Graph from a node list and an edge list in one shot.
// It fails atomically: on any invalid edge the returned graph is nil and no
// partial state escapes. Duplicate node labels are tolerated (AddNode is
// idempotent); a repeated unordered pair silently overwrites the weight.
// Complexity: O(V + E)
func Build(nodes []string, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, label := range nodes {
		if err := g.AddNode(label); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
