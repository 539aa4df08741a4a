package traverse

import (
	"context"
	"errors"

	"github.com/katalvlaran/hookwire/graph"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start NodeID is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrOptionViolation is returned when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrCycleDetected is returned by TopologicalOrder when the graph
	// contains a directed cycle.
	ErrCycleDetected = errors.New("traverse: cycle detected")
)

// Direction selects which connections a traversal follows.
type Direction uint8

const (
	// Downstream follows connections output → input.
	Downstream Direction = iota
	// Upstream follows connections input → output.
	Upstream
	// Both treats connections as undirected.
	Both
)

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects the connection direction to follow.
	Dir Direction

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// OnVisit is called when visiting a node. A returned error aborts
	// the traversal and propagates.
	OnVisit func(id graph.NodeID, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, downstream
// direction, no depth limit, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Dir:     Downstream,
		OnVisit: func(graph.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the connection direction to follow.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d > Both {
			o.err = ErrOptionViolation
			return
		}
		o.Dir = d
	}
}

// WithMaxDepth limits exploration depth; negative values are invalid.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = depth
	}
}

// WithOnVisit registers a callback to run on every visited node.
func WithOnVisit(fn func(id graph.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures a breadth-first traversal: visit order, unweighted
// depth from the start, and parent links (absent for the start node).
type Result struct {
	Order  []graph.NodeID
	Depth  map[graph.NodeID]int
	Parent map[graph.NodeID]graph.NodeID
}

// adjacency builds the neighbor lists a traversal follows, derived
// once per call from the graph's live connections. Deterministic:
// connection iteration order is arena order.
func adjacency(g *graph.Graph, dir Direction) map[graph.NodeID][]graph.NodeID {
	adj := make(map[graph.NodeID][]graph.NodeID)
	for _, pair := range g.Connections() {
		from, to := pair.Output.Node, pair.Input.Node
		switch dir {
		case Downstream:
			adj[from] = append(adj[from], to)
		case Upstream:
			adj[to] = append(adj[to], from)
		case Both:
			adj[from] = append(adj[from], to)
			adj[to] = append(adj[to], from)
		}
	}

	return adj
}
