// Package shortestpath computes single-pair shortest paths over a core.Graph
// with two interchangeable algorithms.
//
// Dijkstra: classic priority-queue relaxation for graphs whose edge weights
// are all non-negative. Vertices are finalized in increasing distance order
// using a min-heap with the lazy decrease-key pattern (duplicates pushed,
// stale entries skipped), and the search stops as soon as the target is
// finalized. A pre-scan rejects any graph carrying a negative weight with
// ErrNegativeWeight rather than returning an undefined answer.
//
//	Time:  O((V + E) log V)
//	Space: O(V + E)
//
// BellmanFord: edge-list relaxation tolerating negative weights. Every
// undirected edge is relaxed in both directions for up to |V|-1 rounds
// (stopping early once a round changes nothing), then one verification pass
// detects any negative-weight cycle reachable from the source and reports it
// as ErrNegativeCycle, never silently degraded to "unreachable".
//
//	Time:  O(V · E)
//	Space: O(V + E)
//
// Both return the same Path shape: the exact minimal total weight plus the
// node sequence from source to target inclusive. An unreachable target is a
// normal result, not an error: Distance == Unreachable and an empty Nodes
// slice. On any graph with all-non-negative weights the two algorithms agree
// exactly; the returned path's edge-weight sum always equals the returned
// distance.
//
// Errors:
//
//	ErrGraphNil       - a nil graph pointer was passed.
//	ErrNodeNotFound   - source or target label is absent from the graph.
//	ErrNegativeWeight - Dijkstra found a negative edge weight (use BellmanFord).
//	ErrNegativeCycle  - BellmanFord found a reachable negative-weight cycle.
package shortestpath
