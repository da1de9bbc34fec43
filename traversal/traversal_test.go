package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/traversal"
)

// buildGraph is a test helper constructing a graph from an edge list with
// unit weights; traversal ignores weights entirely.
func buildGraph(t *testing.T, nodes []string, pairs [][2]string) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Edge{From: p[0], To: p[1], Weight: 1})
	}
	g, err := core.Build(nodes, edges)
	require.NoError(t, err)

	return g
}

// buildTwoComponents yields {A,B,C} connected in a triangle plus an isolated
// pair {X,Y}.
func buildTwoComponents(t *testing.T) *core.Graph {
	t.Helper()

	return buildGraph(t,
		[]string{"A", "B", "C", "X", "Y"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"X", "Y"}},
	)
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := traversal.BFS(nil, "A")
	assert.ErrorIs(t, err, traversal.ErrGraphNil)
}

func TestBFS_StartNotFound(t *testing.T) {
	g := buildTwoComponents(t)
	_, err := traversal.BFS(g, "Z")
	assert.ErrorIs(t, err, traversal.ErrStartNotFound)
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := traversal.DFS(nil, "A")
	assert.ErrorIs(t, err, traversal.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildTwoComponents(t)
	_, err := traversal.DFS(g, "Z")
	assert.ErrorIs(t, err, traversal.ErrStartNotFound)
}

func TestBFS_LevelOrder(t *testing.T) {
	// A-B, A-C, B-D, C-E: levels are {A}, {B,C}, {D,E};
	// ties inside a level break by ascending label.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}},
	)

	res, err := traversal.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 2, res.Depth["E"])
	assert.Equal(t, "C", res.Parent["E"])
}

func TestDFS_PreOrder(t *testing.T) {
	// Same graph: DFS descends into the lowest-labeled neighbor first.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}},
	)

	res, err := traversal.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
}

func TestTraversal_ReachableExactlyOnce(t *testing.T) {
	g := buildTwoComponents(t)

	for name, fn := range map[string]func(*core.Graph, string) (*traversal.Result, error){
		"bfs": traversal.BFS,
		"dfs": traversal.DFS,
	} {
		res, err := fn(g, "A")
		require.NoError(t, err, name)

		// Every node reachable from A appears exactly once; X and Y never do.
		assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Order, name)
		assert.Equal(t, "A", res.Order[0], name)
		assert.NotContains(t, res.Order, "X", name)
		assert.NotContains(t, res.Order, "Y", name)
	}
}

func TestTraversal_Deterministic(t *testing.T) {
	g := buildTwoComponents(t)

	first, err := traversal.BFS(g, "A")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := traversal.BFS(g, "A")
		require.NoError(t, err)
		assert.Equal(t, first.Order, again.Order)
	}
}

func TestResult_PathTo(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
	)

	res, err := traversal.BFS(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestResult_PathTo_Unreached(t *testing.T) {
	g := buildTwoComponents(t)

	res, err := traversal.DFS(g, "A")
	require.NoError(t, err)

	_, err = res.PathTo("X")
	assert.Error(t, err)
}

func TestDFS_LongChainNoStackGrowth(t *testing.T) {
	// A chain of 10k nodes would overflow a recursive DFS; the explicit
	// stack must walk it end to end.
	const n = 10000
	nodes := make([]string, n)
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		nodes[i] = nodeName(i)
		if i > 0 {
			edges = append(edges, core.Edge{From: nodeName(i - 1), To: nodeName(i), Weight: 1})
		}
	}
	g, err := core.Build(nodes, edges)
	require.NoError(t, err)

	res, err := traversal.DFS(g, nodeName(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[nodeName(n-1)])
}

// nodeName yields zero-padded labels so lexicographic order matches chain order.
func nodeName(i int) string {
	const digits = "0123456789"
	buf := []byte{'N', '0', '0', '0', '0', '0'}
	for p := len(buf) - 1; i > 0 && p > 0; p-- {
		buf[p] = digits[i%10]
		i /= 10
	}

	return string(buf)
}
