package traverse

import "github.com/katalvlaran/hookwire/graph"

// Visitation colors for the three-state DFS.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	adj   map[graph.NodeID][]graph.NodeID
	state map[graph.NodeID]int
	order []graph.NodeID
	opts  Options
}

// TopologicalOrder computes a linear ordering of all nodes such that
// for every connection u→v, u appears before v: the order in which an
// editor evaluates its nodes. Returns ErrCycleDetected if the graph
// contains a directed cycle, ErrGraphNil on a nil graph, or the
// context error on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalOrder(g *graph.Graph, opts ...Option) ([]graph.NodeID, error) {
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

	ids := g.Nodes()
	s := &topoSorter{
		adj:   adjacency(g, Downstream),
		state: make(map[graph.NodeID]int, len(ids)),
		order: make([]graph.NodeID, 0, len(ids)),
		opts:  o,
	}
	for _, id := range ids {
		if s.state[id] == white {
			if err := s.visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order to obtain the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs the DFS from id, recording post-order and detecting
// back edges.
func (s *topoSorter) visit(id graph.NodeID) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.state[id] = gray
	for _, nb := range s.adj[id] {
		switch s.state[nb] {
		case gray:
			return ErrCycleDetected
		case white:
			if err := s.visit(nb); err != nil {
				return err
			}
		}
	}
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
