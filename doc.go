// Package routegrid answers connectivity and routing questions over a fixed
// set of named locations joined by symmetric travel distances.
//
// What routegrid does:
//
//	• Core primitives: a simple, undirected, weighted graph over string labels
//	• Traversals: BFS and DFS visitation orders
//	• Shortest paths: Dijkstra and Bellman-Ford (with negative-cycle detection)
//	• Spanning structure: Kruskal minimum spanning forest with union-find
//	• Collaborators: CSV distance-matrix loading, dataset generation,
//	  Graphviz rendering, and a small CLI front end
//
// The library is organized into focused subpackages:
//
//	core/          Graph, Edge, Neighbor types and construction rules
//	traversal/     BFS and DFS visitation orders
//	shortestpath/  Dijkstra and Bellman-Ford single-pair shortest paths
//	spanning/      Kruskal minimum spanning forest
//	matrixcsv/     symmetric distance-matrix CSV loader
//	dataset/       reproducible sample dataset generator
//	render/        DOT and SVG/PNG rendering of graphs and highlighted paths
//
// A graph is built once from validated input and is immutable thereafter;
// every query returns a fresh, self-contained result value, so multiple
// queries may run concurrently against the same graph without coordination.
//
// Quick ASCII example:
//
//	A───1───B
//	│       │
//	4       2
//	│       │
//	C───1───D
//
// The cheapest route A→D follows A─B─D (weight 3), and the minimum spanning
// tree keeps every edge except A─C.
//
//	go get github.com/routegrid/routegrid
package routegrid
