package codegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prunedFixture(t *testing.T) *Graph {
	t.Helper()

	g := New()
	for _, id := range []NodeID{
		{Kind: NodeModule, Name: "app.main"},
		{Kind: NodeModule, Name: "numpy"},
		{Kind: NodeModule, Name: "numpy.linalg"},
		{Kind: NodeModule, Name: "numpylike"},
		{Kind: NodeFunction, Name: "app.main.run"},
	} {
		require.NoError(t, g.EnsureNode(id))
	}
	require.NoError(t, g.AddEdge(NodeID{Kind: NodeModule, Name: "app.main"}, NodeID{Kind: NodeModule, Name: "numpy"}, EdgeImports))
	require.NoError(t, g.AddEdge(NodeID{Kind: NodeModule, Name: "app.main"}, NodeID{Kind: NodeFunction, Name: "app.main.run"}, EdgeDeclares))
	return g
}

func TestPrune_RemovesMatchesAndIncidentEdges(t *testing.T) {
	g := prunedFixture(t)

	require.NoError(t, Prune(g, NewIgnoreSet("numpy")))

	snapshot, err := g.Snapshot()
	require.NoError(t, err)

	names := make([]string, 0, len(snapshot.Nodes))
	for _, node := range snapshot.Nodes {
		names = append(names, node.ID.Name)
	}
	assert.NotContains(t, names, "numpy")
	assert.NotContains(t, names, "numpy.linalg", "dotted-prefix match must be pruned")
	assert.Contains(t, names, "numpylike", "non-dotted prefix lookalike must survive")
	assert.Contains(t, names, "app.main")
	assert.Contains(t, names, "app.main.run")

	require.Len(t, snapshot.Edges, 1)
	assert.Equal(t, EdgeDeclares, snapshot.Edges[0].Kind)
}

func TestPrune_IsIdempotent(t *testing.T) {
	g := prunedFixture(t)
	ignore := NewIgnoreSet("numpy")

	require.NoError(t, Prune(g, ignore))
	once, err := g.Snapshot()
	require.NoError(t, err)

	require.NoError(t, Prune(g, ignore))
	twice, err := g.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestPrune_EmptyIgnoreSetIsNoOp(t *testing.T) {
	g := prunedFixture(t)
	before, err := g.Snapshot()
	require.NoError(t, err)

	require.NoError(t, Prune(g, nil))

	after, err := g.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestIgnoreSet_Matches(t *testing.T) {
	set := NewIgnoreSet("os", "numpy")

	assert.True(t, set.Matches("os"))
	assert.True(t, set.Matches("os.path"))
	assert.True(t, set.Matches("numpy.linalg.norm"))
	assert.False(t, set.Matches("osquery"))
	assert.False(t, set.Matches("app.os"))
}

func TestDefaultIgnoreModules(t *testing.T) {
	defaults := DefaultIgnoreModules()

	assert.ElementsMatch(t, []string{
		"logging", "os", "sys", "timeit", "pytz", "datetime", "numpy", "traceback",
	}, defaults)

	// Callers may append to the returned slice without touching the defaults.
	defaults[0] = "mutated"
	assert.Contains(t, DefaultIgnoreModules(), "logging")
}
