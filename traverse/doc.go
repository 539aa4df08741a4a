// Package traverse walks node-graph connectivity: breadth-first orders
// with depth and parent links, downstream/upstream reachability sets,
// and a topological order suitable for dependency-order evaluation.
//
// Traversals follow live connections only — a neighbor is a node
// reachable through a bound hook — and see the graph as it is at call
// time. Direction is chosen per call: Downstream follows output→input,
// Upstream the reverse, Both treats connections as undirected.
//
// All entry points take functional options in the usual form:
//
//	res, err := traverse.BFS(g, start,
//	    traverse.WithDirection(traverse.Upstream),
//	    traverse.WithMaxDepth(2))
//
// TopologicalOrder reports ErrCycleDetected when the graph cannot be
// linearized; editors that must evaluate nodes front-to-back gate on
// exactly that error.
package traverse
