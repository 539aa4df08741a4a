package traverse

import "github.com/katalvlaran/hookwire/graph"

// queueItem pairs a node with its depth and parent during BFS.
type queueItem struct {
	id     graph.NodeID
	depth  int
	parent graph.NodeID
}

// BFS runs breadth-first search over live connections starting from
// start, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any error returned by the OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *graph.Graph, start graph.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.Node(start); !ok {
		return nil, ErrStartNotFound
	}

	adj := adjacency(g, o.Dir)
	res := &Result{
		Depth:  make(map[graph.NodeID]int),
		Parent: make(map[graph.NodeID]graph.NodeID),
	}
	visited := map[graph.NodeID]bool{start: true}
	queue := []queueItem{{id: start}}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		res.Depth[item.id] = item.depth
		if !item.parent.IsZero() {
			res.Parent[item.id] = item.parent
		}
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, err
		}

		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, nb := range adj[item.id] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, queueItem{id: nb, depth: item.depth + 1, parent: item.id})
		}
	}

	return res, nil
}

// DownstreamSet returns every node reachable from id by following
// connections output → input, excluding id itself.
func DownstreamSet(g *graph.Graph, id graph.NodeID, opts ...Option) ([]graph.NodeID, error) {
	return reachable(g, id, Downstream, opts)
}

// UpstreamSet returns every node id depends on, directly or
// transitively, excluding id itself.
func UpstreamSet(g *graph.Graph, id graph.NodeID, opts ...Option) ([]graph.NodeID, error) {
	return reachable(g, id, Upstream, opts)
}

func reachable(g *graph.Graph, id graph.NodeID, dir Direction, opts []Option) ([]graph.NodeID, error) {
	res, err := BFS(g, id, append(opts, WithDirection(dir))...)
	if err != nil {
		return nil, err
	}
	if len(res.Order) <= 1 {
		return nil, nil
	}

	return res.Order[1:], nil
}
