package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hookwire/catalog"
	"github.com/katalvlaran/hookwire/graph"
	"github.com/katalvlaran/hookwire/traverse"
)

var num = catalog.NewDataType("Number")

// chain builds a linear graph a→b→c→… and returns the ids in order.
func chain(t *testing.T, g *graph.Graph, labels ...string) []graph.NodeID {
	t.Helper()
	ids := make([]graph.NodeID, len(labels))
	for i, label := range labels {
		ids[i] = g.AddNode(label, nil, func(n *graph.Node) {
			n.AddInput("in", num)
			n.AddOutput("out", num)
		})
	}
	for i := 0; i+1 < len(ids); i++ {
		connect(t, g, ids[i], ids[i+1])
	}

	return ids
}

func connect(t *testing.T, g *graph.Graph, from, to graph.NodeID) {
	t.Helper()
	fn, ok := g.Node(from)
	require.True(t, ok)
	tn, ok := g.Node(to)
	require.True(t, ok)
	out, ok := g.Endpoint(from, fn.Outputs()[0])
	require.True(t, ok)
	in, ok := g.Endpoint(to, tn.Inputs()[0])
	require.True(t, ok)
	require.NoError(t, g.AddConnection(out, in))
}

// TestBFSOrderAndDepth verifies order, depth, and parent links on a
// small diamond.
func TestBFSOrderAndDepth(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b", "c")
	a, b, c := ids[0], ids[1], ids[2]

	res, err := traverse.BFS(g, a)
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{a, b, c}, res.Order)
	require.Equal(t, 0, res.Depth[a])
	require.Equal(t, 2, res.Depth[c])
	require.Equal(t, b, res.Parent[c])
	_, hasParent := res.Parent[a]
	require.False(t, hasParent, "start node has no parent")
}

// TestBFSUpstream verifies direction selection.
func TestBFSUpstream(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b", "c")

	res, err := traverse.BFS(g, ids[2], traverse.WithDirection(traverse.Upstream))
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{ids[2], ids[1], ids[0]}, res.Order)
}

// TestBFSMaxDepth verifies the depth limit.
func TestBFSMaxDepth(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b", "c", "d")

	res, err := traverse.BFS(g, ids[0], traverse.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{ids[0], ids[1]}, res.Order)
}

// TestBFSErrors verifies input validation sentinels.
func TestBFSErrors(t *testing.T) {
	g := graph.New()
	id := g.AddNode("a", nil, nil)

	_, err := traverse.BFS(nil, id)
	require.ErrorIs(t, err, traverse.ErrGraphNil)

	_, err = traverse.BFS(g, graph.NodeID{})
	require.ErrorIs(t, err, traverse.ErrStartNotFound)

	_, err = traverse.BFS(g, id, traverse.WithMaxDepth(-1))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)
}

// TestBFSCancellation verifies the context gate.
func TestBFSCancellation(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := traverse.BFS(g, ids[0], traverse.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFSVisitHookAbort verifies a hook error propagates.
func TestBFSVisitHookAbort(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b")

	boom := context.DeadlineExceeded
	_, err := traverse.BFS(g, ids[0], traverse.WithOnVisit(func(graph.NodeID, int) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
}

// TestDownstreamUpstreamSets verifies the reachability helpers exclude
// the start node.
func TestDownstreamUpstreamSets(t *testing.T) {
	g := graph.New()
	ids := chain(t, g, "a", "b", "c")

	down, err := traverse.DownstreamSet(g, ids[0])
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{ids[1], ids[2]}, down)

	up, err := traverse.UpstreamSet(g, ids[2])
	require.NoError(t, err)
	require.Equal(t, []graph.NodeID{ids[1], ids[0]}, up)

	none, err := traverse.DownstreamSet(g, ids[2])
	require.NoError(t, err)
	require.Empty(t, none)
}
