package shortestpath_test

import (
	"fmt"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/shortestpath"
)

// ExampleDijkstra finds the cheapest route across the square
// A-B(1), B-C(2), A-C(4), C-D(1): going around via B beats the direct hop.
func ExampleDijkstra() {
	g, _ := core.Build(
		[]string{"A", "B", "C", "D"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 4},
			{From: "C", To: "D", Weight: 1},
		},
	)

	p, err := shortestpath.Dijkstra(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("distance %d via %v\n", p.Distance, p.Nodes)
	// Output: distance 4 via [A B C D]
}

// ExampleBellmanFord returns the same answer on the same non-negative graph,
// while additionally tolerating negative weights elsewhere.
func ExampleBellmanFord() {
	g, _ := core.Build(
		[]string{"A", "B", "C", "D"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 4},
			{From: "C", To: "D", Weight: 1},
		},
	)

	p, err := shortestpath.BellmanFord(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("distance %d via %v\n", p.Distance, p.Nodes)
	// Output: distance 4 via [A B C D]
}
