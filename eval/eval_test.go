package eval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hookwire/catalog"
	"github.com/katalvlaran/hookwire/eval"
	"github.com/katalvlaran/hookwire/graph"
)

var num = catalog.NewDataType("Number")

// arith is the NodeFunc for the test catalog: "const" nodes emit their
// inline value, "add" nodes sum inputs a and b, "sum" nodes fold every
// connection on their single wide input.
func arith(n *graph.Node, in map[string]any) (map[string]any, error) {
	switch n.Label() {
	case "const":
		return map[string]any{"out": in["value"]}, nil
	case "add":
		a, _ := in["a"].(float64)
		b, _ := in["b"].(float64)
		return map[string]any{"out": a + b}, nil
	case "sum":
		total := 0.0
		switch v := in["in"].(type) {
		case float64:
			total = v
		case []any:
			for _, x := range v {
				f, _ := x.(float64)
				total += f
			}
		}
		return map[string]any{"out": total}, nil
	default:
		return nil, errors.New("unknown node kind")
	}
}

func constNode(g *graph.Graph, v float64) graph.NodeID {
	return g.AddNode("const", nil, func(n *graph.Node) {
		n.AddInput("value", num, graph.WithKind(graph.ConstantOnly), graph.WithValue(v))
		n.AddOutput("out", num)
	})
}

func addNode(g *graph.Graph) graph.NodeID {
	return g.AddNode("add", nil, func(n *graph.Node) {
		n.AddInput("a", num, graph.WithCapacity(1), graph.WithKind(graph.ConnectionOrConstant), graph.WithValue(0.0))
		n.AddInput("b", num, graph.WithCapacity(1), graph.WithKind(graph.ConnectionOrConstant), graph.WithValue(0.0))
		n.AddOutput("out", num)
	})
}

func connectPorts(t *testing.T, g *graph.Graph, from graph.NodeID, to graph.NodeID, toPort string) {
	t.Helper()
	fn, _ := g.Node(from)
	tn, _ := g.Node(to)
	out, ok := g.Endpoint(from, fn.Outputs()[0])
	require.True(t, ok)
	p, ok := tn.InputByName(toPort)
	require.True(t, ok)
	in, ok := g.Endpoint(to, p)
	require.True(t, ok)
	require.NoError(t, g.AddConnection(out, in))
}

func outPort(t *testing.T, g *graph.Graph, id graph.NodeID) graph.PortID {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok)

	return n.Outputs()[0]
}

// TestEvaluateChain verifies pulling through const → add with a
// constant fallback on the unconnected input.
func TestEvaluateChain(t *testing.T) {
	g := graph.New()
	c := constNode(g, 2.0)
	a := addNode(g)
	connectPorts(t, g, c, a, "a") // b stays disconnected, falls back to 0

	ev := eval.New(arith)
	v, err := ev.Evaluate(g, a, outPort(t, g, a))
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// TestEvaluateDiamondMemoizes verifies a shared upstream node is
// computed once.
func TestEvaluateDiamondMemoizes(t *testing.T) {
	g := graph.New()
	calls := 0
	counting := func(n *graph.Node, in map[string]any) (map[string]any, error) {
		if n.Label() == "const" {
			calls++
		}
		return arith(n, in)
	}

	c := constNode(g, 3.0)
	a := addNode(g)
	connectPorts(t, g, c, a, "a")
	connectPorts(t, g, c, a, "b")

	ev := eval.New(counting)
	v, err := ev.Evaluate(g, a, outPort(t, g, a))
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, 1, calls, "shared upstream must evaluate once")
}

// TestEvaluateWideInput verifies several bound hooks arrive as a
// slice.
func TestEvaluateWideInput(t *testing.T) {
	g := graph.New()
	s := g.AddNode("sum", nil, func(n *graph.Node) {
		n.AddInput("in", num) // unbounded
		n.AddOutput("out", num)
	})
	for _, v := range []float64{1, 2, 3} {
		connectPorts(t, g, constNode(g, v), s, "in")
	}

	ev := eval.New(arith)
	v, err := ev.Evaluate(g, s, outPort(t, g, s))
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestEvaluateCycle verifies self-dependency is reported, not
// recursed.
func TestEvaluateCycle(t *testing.T) {
	g := graph.New()
	a := addNode(g)
	b := addNode(g)
	connectPorts(t, g, a, b, "a")
	connectPorts(t, g, b, a, "a")

	ev := eval.New(arith)
	_, err := ev.Evaluate(g, a, outPort(t, g, a))
	require.ErrorIs(t, err, eval.ErrCycle)
}

// TestEvaluateResetRecomputes verifies the cache invalidation contract.
func TestEvaluateResetRecomputes(t *testing.T) {
	g := graph.New()
	c := constNode(g, 5.0)
	a := addNode(g)
	connectPorts(t, g, c, a, "a")

	ev := eval.New(arith)
	v, err := ev.Evaluate(g, a, outPort(t, g, a))
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	// Mutate the constant, then reset the cache.
	cNode, _ := g.Node(c)
	require.NoError(t, g.NodeMut(c, func(n *graph.Node) error {
		return n.SetInputValue(cNode.Inputs()[0], 7.0)
	}))

	v, err = ev.Evaluate(g, a, outPort(t, g, a))
	require.NoError(t, err)
	require.Equal(t, 5.0, v, "stale value until Reset")

	ev.Reset()
	v, err = ev.Evaluate(g, a, outPort(t, g, a))
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

// TestEvaluateErrors verifies the validation sentinels.
func TestEvaluateErrors(t *testing.T) {
	g := graph.New()
	a := addNode(g)
	ev := eval.New(arith)

	_, err := ev.Evaluate(g, graph.NodeID{}, outPort(t, g, a))
	require.ErrorIs(t, err, eval.ErrBadNode)

	n, _ := g.Node(a)
	_, err = ev.Evaluate(g, a, n.Inputs()[0])
	require.ErrorIs(t, err, eval.ErrBadPort)

	_, err = eval.New(nil).Evaluate(g, a, outPort(t, g, a))
	require.ErrorIs(t, err, eval.ErrNilFunc)
}

// TestEvaluateMissingOutput verifies a NodeFunc that forgets an output
// is reported with provenance.
func TestEvaluateMissingOutput(t *testing.T) {
	g := graph.New()
	id := g.AddNode("silent", nil, func(n *graph.Node) {
		n.AddOutput("out", num)
	})
	ev := eval.New(func(*graph.Node, map[string]any) (map[string]any, error) {
		return map[string]any{}, nil
	})

	_, err := ev.Evaluate(g, id, outPort(t, g, id))
	require.ErrorIs(t, err, eval.ErrMissingOutput)
}
