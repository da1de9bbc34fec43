// Package traversal: depth-first search with an explicit stack.
package traversal

import (
	"fmt"

	"github.com/routegrid/routegrid/core"
)

// DFS runs depth-first search on g starting from start, recording nodes in
// pre-order. The traversal uses an explicit stack of pending nodes instead of
// recursion, so call depth stays constant regardless of graph size.
//
// Nodes are marked visited before being pushed, never after being popped:
// a node already scheduled is never scheduled twice, though it may wait in
// the frontier before becoming the current top. Neighbors are pushed in
// descending label order so that the lowest-labeled unvisited neighbor is
// explored first.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start string) (*Result, error) {
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

	// Visited membership is presence in Depth, set at push time.
	stack := make([]string, 0, n)
	stack = append(stack, start)
	res.Depth[start] = 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Order = append(res.Order, top)

		nbs, err := g.Neighbors(top)
		if err != nil {
			return nil, fmt.Errorf("traversal: neighbors of %q: %w", top, err)
		}
		// Reverse order: the smallest label ends up on top of the stack.
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i].Node
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[top] + 1
			res.Parent[nb] = top
			stack = append(stack, nb)
		}
	}

	return res, nil
}
