package graph_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hookwire/graph"
)

// resolver knows the two data types the tests use.
func resolver(name string) (graph.DataType, bool) {
	switch name {
	case "Scalar":
		return scalar, true
	case "Vec2":
		return vector, true
	default:
		return nil, false
	}
}

// connectivity reduces a graph to a label-based edge set, comparable
// across restores where generational ids differ.
func connectivity(t *testing.T, g *graph.Graph) []string {
	t.Helper()
	var edges []string
	for _, pair := range g.Connections() {
		from, ok := g.Node(pair.Output.Node)
		require.True(t, ok)
		to, ok := g.Node(pair.Input.Node)
		require.True(t, ok)
		fromPort, _ := from.PortName(pair.Output.Port)
		toPort, _ := to.PortName(pair.Input.Port)
		edges = append(edges, from.Label()+"."+fromPort+"->"+to.Label()+"."+toPort)
	}
	sort.Strings(edges)

	return edges
}

// TestSnapshotRoundTrip verifies serialize → deserialize reproduces
// identical connectivity, through an actual JSON marshal.
func TestSnapshotRoundTrip(t *testing.T) {
	g := graph.New()
	a := g.AddNode("osc", nil, func(n *graph.Node) {
		n.AddInput("freq", scalar, graph.WithKind(graph.ConnectionOrConstant), graph.WithValue(440.0))
		n.AddOutput("wave", scalar)
	})
	b := g.AddNode("gain", nil, func(n *graph.Node) {
		n.AddInput("signal", scalar, graph.WithCapacity(1))
		n.AddInput("amount", scalar, graph.WithKind(graph.ConstantOnly), graph.WithValue(0.5))
		n.AddOutput("signal", scalar)
	})
	c := g.AddNode("mix", nil, func(n *graph.Node) {
		n.AddInput("in", scalar) // unbounded
		n.AddOutput("out", scalar)
	})

	aNode, _ := g.Node(a)
	bNode, _ := g.Node(b)
	require.NoError(t, g.AddConnection(
		mustEndpoint(t, g, a, aNode.Outputs()[0]),
		mustEndpoint(t, g, b, bNode.Inputs()[0])))
	require.NoError(t, g.AddConnection(
		mustEndpoint(t, g, b, bNode.Outputs()[0]),
		endpoint(t, g, c, graph.SideInput)))
	require.NoError(t, g.AddConnection(
		mustEndpoint(t, g, a, aNode.Outputs()[0]),
		endpoint(t, g, c, graph.SideInput)))

	raw, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var snap graph.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))

	restored, err := graph.Restore(&snap, resolver)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), restored.NodeCount())
	require.Equal(t, connectivity(t, g), connectivity(t, restored))
	requireSymmetric(t, restored)

	// Port attributes survive the trip.
	for _, id := range restored.Nodes() {
		n, _ := restored.Node(id)
		if n.Label() != "gain" {
			continue
		}
		amount, ok := n.InputByName("amount")
		require.True(t, ok)
		p, _ := n.Port(amount)
		require.Equal(t, graph.ConstantOnly, p.Kind())
		require.Equal(t, 0.5, p.Value())
		signal, _ := n.InputByName("signal")
		sp, _ := n.Port(signal)
		require.Equal(t, 1, sp.Capacity())
	}
}

func mustEndpoint(t *testing.T, g *graph.Graph, id graph.NodeID, p graph.PortID) graph.ConnectionID {
	t.Helper()
	ep, ok := g.Endpoint(id, p)
	require.True(t, ok)

	return ep
}

// TestRestoreUnknownDataType verifies the resolver failure path.
func TestRestoreUnknownDataType(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.NodeSnapshot{{
			Label:   "x",
			Outputs: []graph.PortSnapshot{{Name: "out", DataType: "Mystery"}},
		}},
	}
	_, err := graph.Restore(snap, resolver)
	require.ErrorIs(t, err, graph.ErrUnknownDataType)
}

// TestRestoreBadConnectionIndex verifies corrupt connection tables are
// rejected rather than panicking.
func TestRestoreBadConnectionIndex(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.NodeSnapshot{{
			Label:   "x",
			Outputs: []graph.PortSnapshot{{Name: "out", DataType: "Scalar"}},
		}},
		Connections: []graph.ConnSnapshot{{FromNode: 0, FromPort: 0, ToNode: 5, ToPort: 0}},
	}
	_, err := graph.Restore(snap, resolver)
	require.Error(t, err)
}

// TestSnapshotEmptyGraph verifies the degenerate case.
func TestSnapshotEmptyGraph(t *testing.T) {
	snap := graph.New().Snapshot()
	require.Empty(t, snap.Nodes)
	require.Empty(t, snap.Connections)

	restored, err := graph.Restore(snap, resolver)
	require.NoError(t, err)
	require.Equal(t, 0, restored.NodeCount())
}
