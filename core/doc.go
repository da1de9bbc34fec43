// Package core defines the central Graph, Edge, and Neighbor types for
// routegrid: a simple, undirected, weighted graph over string labels.
//
// What & Why
//
//   - Nodes are identified by their label (a city name); there is no separate
//     numeric ID. Lookup by label is O(1) amortized.
//   - Edges are unordered pairs of distinct nodes with an int64 weight.
//     Distances in this domain are whole numbers, so integer arithmetic keeps
//     every computed total exact, with no floating-point drift.
//   - The graph is simple: at most one edge per unordered pair, no self-loops.
//     Adding an edge for a pair that already has one silently overwrites the
//     weight; symmetric distance matrices present each pair twice, and the
//     loader skips the lower triangle rather than erroring on the duplicate.
//
// Construction & immutability
//
// A Graph is assembled once, either incrementally via AddNode/AddEdge or
// atomically via Build, and treated as read-only afterwards. None of the
// query methods mutate state, so any number of algorithm runs may share one
// Graph instance across goroutines without locks.
//
// Weights
//
// By default AddEdge rejects negative weights with ErrInvalidEdge. The
// WithNegativeWeights option lifts that restriction for callers that feed
// the graph to Bellman-Ford; Dijkstra and Kruskal re-check and refuse such
// graphs at their own boundaries.
//
// Determinism
//
// Nodes(), Edges(), and Neighbors() all return label-sorted slices, so every
// algorithm built on top of core observes the same enumeration order on every
// run for the same input.
//
// Errors:
//
//	ErrEmptyLabel  - a node label is the empty string.
//	ErrUnknownNode - a referenced node does not exist.
//	ErrInvalidEdge - self-loop, negative weight (without the option), or a
//	                 dangling endpoint at construction time.
package core
