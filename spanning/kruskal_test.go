package spanning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/spanning"
)

func build(t *testing.T, nodes []string, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.Build(nodes, edges)
	require.NoError(t, err)

	return g
}

func TestKruskal_NilGraph(t *testing.T) {
	_, err := spanning.Kruskal(nil)
	assert.ErrorIs(t, err, spanning.ErrGraphNil)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	f, err := spanning.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Equal(t, int64(0), f.TotalWeight)
	assert.Equal(t, 0, f.Trees)
}

func TestKruskal_SingleNode(t *testing.T) {
	f, err := spanning.Kruskal(build(t, []string{"Solo"}, nil))
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Equal(t, 1, f.Trees)
}

func TestKruskal_NegativeWeightRejected(t *testing.T) {
	g, err := core.Build(
		[]string{"A", "B"},
		[]core.Edge{{From: "A", To: "B", Weight: -2}},
		core.WithNegativeWeights(),
	)
	require.NoError(t, err)

	_, err = spanning.Kruskal(g)
	assert.ErrorIs(t, err, spanning.ErrNegativeWeight)
}

func TestKruskal_ReferenceScenario(t *testing.T) {
	// A-B(1), B-C(2), A-C(4), C-D(1): the forest keeps A-B, C-D, B-C.
	g := build(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 4},
		{From: "C", To: "D", Weight: 1},
	})

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), f.TotalWeight)
	assert.Equal(t, 1, f.Trees)
	assert.ElementsMatch(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, f.Edges)
}

func TestKruskal_ConnectedHasNMinusOneEdges(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D", "E"}, []core.Edge{
		{From: "A", To: "B", Weight: 3},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "C", Weight: 7},
		{From: "B", To: "D", Weight: 5},
		{From: "C", To: "D", Weight: 2},
		{From: "D", To: "E", Weight: 7},
		{From: "C", To: "E", Weight: 8},
	})

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, f.Edges, 4)
	assert.Equal(t, 1, f.Trees)

	var sum int64
	for _, e := range f.Edges {
		sum += e.Weight
	}
	assert.Equal(t, sum, f.TotalWeight)
}

func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	// Components of sizes 3 and 2: the forest has (3-1)+(2-1)=3 edges.
	g := build(t, []string{"A", "B", "C", "X", "Y"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 3},
		{From: "X", To: "Y", Weight: 4},
	})

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, f.Edges, 3)
	assert.Equal(t, 2, f.Trees)
	assert.Equal(t, int64(7), f.TotalWeight)
}

func TestKruskal_EqualWeightTieBreak(t *testing.T) {
	// Every edge weighs 1: selection must follow lexicographic (From, To)
	// order, keeping A-B and A-C and discarding B-C.
	g := build(t, []string{"A", "B", "C"}, []core.Edge{
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	})

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
	}, f.Edges)
}

// TestKruskal_MatchesBruteForce enumerates every spanning edge subset of a
// small connected graph and checks that no spanning tree beats Kruskal's
// total weight.
func TestKruskal_MatchesBruteForce(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "E", "F"}
	edges := []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "C", Weight: 5},
		{From: "B", To: "D", Weight: 10},
		{From: "C", To: "D", Weight: 3},
		{From: "C", To: "E", Weight: 8},
		{From: "D", To: "E", Weight: 1},
		{From: "D", To: "F", Weight: 7},
		{From: "E", To: "F", Weight: 9},
	}
	g := build(t, nodes, edges)

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, f.Edges, len(nodes)-1)

	best := bruteForceMST(nodes, edges)
	assert.Equal(t, best, f.TotalWeight)
}

// bruteForceMST tries every subset of n-1 edges and returns the minimum total
// weight among those forming a spanning tree. Exponential; test graphs only.
func bruteForceMST(nodes []string, edges []core.Edge) int64 {
	n := len(nodes)
	best := int64(1<<62 - 1)
	var pick func(start int, chosen []core.Edge)
	pick = func(start int, chosen []core.Edge) {
		if len(chosen) == n-1 {
			if spansAll(nodes, chosen) {
				var sum int64
				for _, e := range chosen {
					sum += e.Weight
				}
				if sum < best {
					best = sum
				}
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick(i+1, append(chosen, edges[i]))
		}
	}
	pick(0, nil)

	return best
}

// spansAll reports whether the chosen edges connect every node.
func spansAll(nodes []string, chosen []core.Edge) bool {
	parent := make(map[string]string, len(nodes))
	for _, l := range nodes {
		parent[l] = l
	}
	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	for _, e := range chosen {
		parent[find(e.From)] = find(e.To)
	}
	root := find(nodes[0])
	for _, l := range nodes[1:] {
		if find(l) != root {
			return false
		}
	}

	return true
}
