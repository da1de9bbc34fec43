// Package traversal provides breadth-first and depth-first visitation orders
// over a core.Graph.
//
// Both traversals take a graph and a start node and return a Result holding
// the visitation order, per-node depth (in edges) from the start, and parent
// links in the traversal tree. Neither considers edge weights.
//
// Determinism
//
// Neighbor enumeration follows core.Graph.Neighbors, which sorts by label.
// Ties between same-depth nodes therefore always break the same way: BFS
// dequeues in ascending-label order within a level, and DFS descends into the
// lowest-labeled unvisited neighbor first.
//
// DFS and recursion
//
// DFS is implemented with an explicit stack rather than recursion, so graphs
// with hundreds of chained nodes cannot exhaust the call stack. Nodes are
// marked visited when pushed, never re-pushed, and recorded in pre-order when
// popped: a node may sit in the frontier before becoming the current top, but
// it appears in the output exactly once.
//
// Complexity: O(V + E) time and O(V) memory for either traversal.
//
// Errors:
//
//	ErrGraphNil      - a nil graph pointer was passed.
//	ErrStartNotFound - the start label is absent from the graph.
package traversal
