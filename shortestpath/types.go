// Package shortestpath: result type and sentinel errors shared by both
// algorithms.
package shortestpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/routegrid/routegrid/core"
)

// Unreachable is the sentinel distance reported when no path exists between
// source and target. It is a normal, representable result (disconnected
// inputs are a valid domain state) and never an error.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrNodeNotFound is returned when the source or target label is absent.
	ErrNodeNotFound = errors.New("shortestpath: node not found")

	// ErrNegativeWeight is returned by Dijkstra when the graph carries a
	// negative edge weight; use BellmanFord for such graphs.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight")

	// ErrNegativeCycle is returned by BellmanFord when a cycle whose
	// traversal strictly decreases distance is reachable from the source.
	ErrNegativeCycle = errors.New("shortestpath: negative-weight cycle detected")
)

// Path is a single-pair shortest-path result: the total cumulative weight and
// the ordered node sequence from source to target inclusive. When the target
// is unreachable, Distance is Unreachable and Nodes is empty.
type Path struct {
	Distance int64
	Nodes    []string
}

// Reachable reports whether a path between source and target exists.
func (p Path) Reachable() bool { return p.Distance != Unreachable }

// validatePair checks the common preconditions of both algorithms.
func validatePair(g *core.Graph, source, target string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Contains(source) {
		return fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.Contains(target) {
		return fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	return nil
}

// reconstruct walks predecessor links backwards from target and returns the
// source→target node sequence. prev must hold an entry for every node on the
// path except the source.
func reconstruct(prev map[string]string, source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
