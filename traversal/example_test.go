package traversal_test

import (
	"fmt"
	"strings"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/traversal"
)

// ExampleBFS shows the level-order visit of a small hub-and-spoke map.
func ExampleBFS() {
	g, _ := core.Build(
		[]string{"Delhi", "Agra", "Jaipur", "Lucknow"},
		[]core.Edge{
			{From: "Delhi", To: "Agra", Weight: 233},
			{From: "Delhi", To: "Jaipur", Weight: 268},
			{From: "Agra", To: "Lucknow", Weight: 335},
		},
	)

	res, _ := traversal.BFS(g, "Delhi")
	fmt.Println(strings.Join(res.Order, " -> "))

	hops, _ := res.PathTo("Lucknow")
	fmt.Println(strings.Join(hops, " -> "))

	// Output:
	// Delhi -> Agra -> Jaipur -> Lucknow
	// Delhi -> Agra -> Lucknow
}
