// Package spanning computes a minimum spanning forest of a core.Graph using
// Kruskal's algorithm.
//
// What & Why
//
// Given an undirected, weighted graph, a minimum spanning forest is the
// cheapest acyclic edge subset connecting all nodes of every connected
// component: one tree per component, a single tree when the graph is
// connected. In the travel-route domain it acts as a tour planner: the
// minimum total distance that still links every city.
//
// Algorithm
//
// Edges are sorted ascending by weight with a deterministic tie-break. Equal
// weights order lexicographically by the (From, To) endpoint pair, so the
// selected forest is reproducible across runs. A disjoint-set (union-find)
// structure with path compression and union by rank tracks components; an
// edge joins the forest exactly when its endpoints lie in different sets.
// The loop ends as soon as all nodes share one set, or when edges run out.
//
// Disconnected input is not an error: the result is simply a forest with
// more than one tree. Total weight is computed in exact int64 arithmetic and
// always equals the sum of the selected edges' weights.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time, O(V + E) memory.
//
// Errors:
//
//	ErrGraphNil       - a nil graph pointer was passed.
//	ErrNegativeWeight - the graph carries a negative edge weight.
package spanning
