// Package traversal: breadth-first search.
package traversal

import (
	"fmt"

	"github.com/routegrid/routegrid/core"
)

// queueItem pairs a node label with its BFS depth.
type queueItem struct {
	label string
	depth int
}

// BFS runs breadth-first search on g starting from start, visiting nodes in
// level order. Same-depth ties break by ascending label, following the
// graph's sorted neighbor enumeration.
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	// Seed the frontier with the start node; visited membership is tracked
	// by presence in Depth, set at enqueue time so a node is never scheduled
	// twice.
	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{label: start, depth: 0})
	res.Depth[start] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.label)

		nbs, err := g.Neighbors(item.label)
		if err != nil {
			return nil, fmt.Errorf("traversal: neighbors of %q: %w", item.label, err)
		}
		for _, nb := range nbs {
			if _, seen := res.Depth[nb.Node]; seen {
				continue
			}
			res.Depth[nb.Node] = item.depth + 1
			res.Parent[nb.Node] = item.label
			queue = append(queue, queueItem{label: nb.Node, depth: item.depth + 1})
		}
	}

	return res, nil
}
