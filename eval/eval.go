package eval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hookwire/graph"
)

// Sentinel errors for evaluation.
var (
	// ErrNilFunc is returned when the Evaluator was built without a
	// NodeFunc.
	ErrNilFunc = errors.New("eval: node function is nil")

	// ErrBadNode indicates a NodeID that does not resolve.
	ErrBadNode = errors.New("eval: node not found")

	// ErrBadPort indicates the requested port is not an output port of
	// the node.
	ErrBadPort = errors.New("eval: output port not found")

	// ErrCycle indicates the requested value depends on itself.
	ErrCycle = errors.New("eval: graph contains a cycle")

	// ErrMissingOutput indicates the NodeFunc did not produce a value
	// for a requested output port.
	ErrMissingOutput = errors.New("eval: node function produced no value for output")
)

// NodeFunc computes one node's outputs from its resolved inputs.
// inputs is keyed by input port name; the result must be keyed by
// output port name.
type NodeFunc func(n *graph.Node, inputs map[string]any) (map[string]any, error)

// outputKey identifies one output port's memoized value.
type outputKey struct {
	node graph.NodeID
	port graph.PortID
}

// Evaluator pulls values through a graph with a per-output memo cache.
// Not safe for concurrent use.
type Evaluator struct {
	fn    NodeFunc
	cache map[outputKey]any
	busy  map[graph.NodeID]bool
}

// New constructs an Evaluator around the given NodeFunc.
func New(fn NodeFunc) *Evaluator {
	return &Evaluator{
		fn:    fn,
		cache: make(map[outputKey]any),
		busy:  make(map[graph.NodeID]bool),
	}
}

// Reset discards every memoized value. Call it after the graph
// changes.
func (e *Evaluator) Reset() {
	e.cache = make(map[outputKey]any)
}

// Evaluate returns the value of the given output port, computing and
// caching everything upstream as needed.
func (e *Evaluator) Evaluate(g *graph.Graph, node graph.NodeID, port graph.PortID) (any, error) {
	if e.fn == nil {
		return nil, ErrNilFunc
	}
	if port.Side != graph.SideOutput {
		return nil, ErrBadPort
	}
	if v, ok := e.cache[outputKey{node: node, port: port}]; ok {
		return v, nil
	}

	n, ok := g.Node(node)
	if !ok {
		return nil, ErrBadNode
	}
	if _, ok = n.Port(port); !ok {
		return nil, ErrBadPort
	}
	if e.busy[node] {
		return nil, ErrCycle
	}
	e.busy[node] = true
	defer delete(e.busy, node)

	inputs, err := e.resolveInputs(g, n)
	if err != nil {
		return nil, err
	}
	outputs, err := e.fn(n, inputs)
	if err != nil {
		return nil, fmt.Errorf("eval: node %q: %w", n.Label(), err)
	}

	// Memoize every output the function produced, not just the one
	// asked for.
	for _, p := range n.Outputs() {
		name, _ := n.PortName(p)
		if v, ok := outputs[name]; ok {
			e.cache[outputKey{node: node, port: p}] = v
		}
	}

	v, ok := e.cache[outputKey{node: node, port: port}]
	if !ok {
		name, _ := n.PortName(port)
		return nil, fmt.Errorf("%w: %q on node %q", ErrMissingOutput, name, n.Label())
	}

	return v, nil
}

// resolveInputs gathers one value per input port: connected ports pull
// from upstream (a slice when several hooks are bound), disconnected
// ports fall back to their inline constant when their kind allows one.
func (e *Evaluator) resolveInputs(g *graph.Graph, n *graph.Node) (map[string]any, error) {
	inputs := make(map[string]any)
	for _, p := range n.Inputs() {
		name, _ := n.PortName(p)
		port, _ := n.Port(p)

		var pulled []any
		hooks, _ := n.Hooks(p)
		for _, hs := range hooks {
			if !hs.Bound {
				continue
			}
			v, err := e.Evaluate(g, hs.Remote.Node, hs.Remote.Port)
			if err != nil {
				return nil, err
			}
			pulled = append(pulled, v)
		}

		switch {
		case len(pulled) == 1:
			inputs[name] = pulled[0]
		case len(pulled) > 1:
			inputs[name] = pulled
		case port.Kind() != graph.ConnectionOnly:
			inputs[name] = port.Value()
		}
	}

	return inputs, nil
}
