// Package traversal: result type and sentinel errors shared by BFS and DFS.
package traversal

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrStartNotFound is returned when the start label is absent.
	ErrStartNotFound = errors.New("traversal: start node not found")
)

// Result holds the outcome of a traversal:
//   - Order: nodes in visitation order, each reachable node exactly once,
//     starting with the start node.
//   - Depth: map from node label to its distance (in edges) from the start.
//   - Parent: map from node label to its predecessor in the traversal tree;
//     the start node has no entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the traversal-tree path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traversal: no path to %q", dest)
	}
	// Build the path backwards along parent links.
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// Reverse to get start → dest.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
