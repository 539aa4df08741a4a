package graph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hookwire/arena"
)

// droppedList is the shared list of connection endpoints whose
// complement must still be severed. It exists to resolve reentrancy,
// not parallelism: a drop performed deep inside a mutation queues its
// remote here instead of recursing into another node mid-operation.
type droppedList struct {
	mu  sync.Mutex
	ids []ConnectionID
}

func (l *droppedList) push(id ConnectionID) {
	l.mu.Lock()
	l.ids = append(l.ids, id)
	l.mu.Unlock()
}

// drain moves the pending entries into a fresh local buffer. Draining
// under the lock into a buffer first is required: repairing a
// complement pushes onto this same list.
func (l *droppedList) drain() []ConnectionID {
	l.mu.Lock()
	out := l.ids
	l.ids = nil
	l.mu.Unlock()

	return out
}

func (l *droppedList) clear() {
	l.mu.Lock()
	l.ids = nil
	l.mu.Unlock()
}

// connToken is the one-shot capability that lets a port accept a
// connection. It records the complementary endpoint; a token released
// without being consumed reports that endpoint as dropped, which rolls
// back the half-bound side of a failed AddConnection. Tokens are
// created only by the Graph, so an available hook can never be consumed
// behind the graph's back.
type connToken struct {
	remote   ConnectionID
	list     *droppedList
	consumed bool
}

func (t *connToken) consume() { t.consumed = true }

// release queues the recorded complement for repair unless the token
// was consumed by a successful bind.
func (t *connToken) release() {
	if t.consumed {
		return
	}
	t.consumed = true
	t.list.push(t.remote)
}

// Severed is one connection removed as a side effect of a node
// deletion: the endpoint on the removed node and the endpoint that was
// repaired on the surviving neighbor.
type Severed struct {
	Local  ConnectionID
	Remote ConnectionID
}

// Graph is the arena owning all nodes. It stores no connection state
// of its own — bindings live inside ports — and orchestrates every
// operation that touches two nodes at once.
//
// Single-threaded, call-and-return: every method completes before
// returning, and any half-open connection produced mid-operation is
// repaired before control returns to the caller.
type Graph struct {
	nodes   arena.Arena[*Node]
	dropped *droppedList
}

// New constructs an empty Graph.
func New() *Graph {
	return &Graph{dropped: &droppedList{}}
}

// AddNode inserts a node with the given label and user payload, then
// runs build (if non-nil) to populate its ports. Returns the fresh
// NodeID.
func (g *Graph) AddNode(label string, userData any, build func(*Node)) NodeID {
	k := g.nodes.InsertWithKey(func(k arena.Key) *Node {
		return &Node{
			id:       NodeID(k),
			label:    label,
			userData: userData,
			dropped:  g.dropped,
		}
	})
	n, _ := g.nodes.Get(k)
	if build != nil {
		build(n)
	}

	return NodeID(k)
}

// Node returns the node for read access, or false if the id does not
// resolve. Mutations must go through NodeMut so the graph can repair
// any connections the mutation drops.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	return g.nodes.Get(arena.Key(id))
}

// NodeMut runs f against the node and then repairs every connection f
// dropped, whether or not f reports an error. This is the mechanism by
// which arbitrary node mutations stay safe without the graph knowing
// what changed.
func (g *Graph) NodeMut(id NodeID, f func(*Node) error) error {
	n, ok := g.nodes.Get(arena.Key(id))
	if !ok {
		return ErrBadNode
	}
	defer g.processDroppedConnections()

	return f(n)
}

// RemoveNode deletes a node, first severing every connection touching
// it so no neighbor is left with a dangling endpoint. Returns the
// removed node and the full list of severed connections for UI-level
// bookkeeping, or false if the id does not resolve. Every ConnectionID
// naming the removed node is permanently invalid afterwards.
func (g *Graph) RemoveNode(id NodeID) (*Node, []Severed, bool) {
	n, ok := g.nodes.Get(arena.Key(id))
	if !ok {
		return nil, nil, false
	}
	defer g.processDroppedConnections()

	bindings := n.DropAllConnections()
	severed := make([]Severed, len(bindings))
	for i, b := range bindings {
		severed[i] = Severed{
			Local:  ConnectionID{Node: id, Port: b.Port, Hook: b.Hook},
			Remote: b.Remote,
		}
	}
	g.nodes.Remove(arena.Key(id))

	return n, severed, true
}

// Nodes returns all live NodeIDs in deterministic arena order.
func (g *Graph) Nodes() []NodeID {
	keys := g.nodes.Keys()
	out := make([]NodeID, len(keys))
	for i, k := range keys {
		out[i] = NodeID(k)
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// AddConnection establishes a connection between an output endpoint and
// an input endpoint. The endpoints must sit on their named sides: a
// swapped or same-side pair fails with ErrWrongSide. Establishment is
// two-phase and token-guarded:
//
//  1. Both endpoints get a one-shot token recording the complementary
//     endpoint.
//  2. The output side binds first; failure aborts with the output-end
//     error.
//  3. Only then the input side binds; failure aborts with the input-end
//     error.
//  4. Any token not consumed by a successful bind queues its complement
//     for repair, rolling back the side that did bind.
//  5. Repair always runs before returning, so the graph never ends up
//     with one side connected and the other not.
func (g *Graph) AddConnection(output, input ConnectionID) error {
	defer g.processDroppedConnections()

	if !output.IsOutput() {
		return &ConnectionError{End: OutputEnd, Node: output.Node, Err: ErrWrongSide}
	}
	if !input.IsInput() {
		return &ConnectionError{End: InputEnd, Node: input.Node, Err: ErrWrongSide}
	}
	outNode, ok := g.nodes.Get(arena.Key(output.Node))
	if !ok {
		return &ConnectionError{End: OutputEnd, Node: output.Node, Err: ErrBadOutputNode}
	}
	inNode, ok := g.nodes.Get(arena.Key(input.Node))
	if !ok {
		return &ConnectionError{End: InputEnd, Node: input.Node, Err: ErrBadInputNode}
	}
	if output.Node == input.Node {
		return ErrSameNode
	}
	if odt, haveOut := outNode.PortDataType(output.Port); haveOut {
		if idt, haveIn := inNode.PortDataType(input.Port); haveIn {
			if !odt.CompatibleWith(idt) {
				return &ConnectionError{End: InputEnd, Node: input.Node, Err: ErrTypeMismatch}
			}
		}
	}

	outTok := &connToken{remote: input, list: g.dropped}
	inTok := &connToken{remote: output, list: g.dropped}
	defer outTok.release()
	defer inTok.release()

	if err := outNode.connect(output.Port, output.Hook, outTok); err != nil {
		return &ConnectionError{End: OutputEnd, Node: output.Node, Err: err}
	}
	if err := inNode.connect(input.Port, input.Hook, inTok); err != nil {
		return &ConnectionError{End: InputEnd, Node: input.Node, Err: err}
	}

	return nil
}

// DropConnection severs the connection at the given endpoint and
// returns the endpoint it was connected to. The complementary side is
// repaired before returning.
func (g *Graph) DropConnection(id ConnectionID) (ConnectionID, error) {
	n, ok := g.nodes.Get(arena.Key(id.Node))
	if !ok {
		return ConnectionID{}, ErrBadNode
	}
	defer g.processDroppedConnections()

	return n.DropConnection(id.Port, id.Hook)
}

// processDroppedConnections drains the shared dropped list and severs
// the complement of every entry. Runs after every graph-level mutation.
//
// The drain-first discipline matters: severing a complement pushes the
// original endpoint back onto the shared list. Those pushes are
// results, not new input, so after the local buffer is worked off both
// the buffer and the list are cleared.
func (g *Graph) processDroppedConnections() {
	pending := g.dropped.drain()
	for _, id := range pending {
		g.dropEndpoint(id)
	}
	g.dropped.clear()
}

// dropEndpoint severs one endpoint, tolerating every form of
// staleness: the node may be gone, the port may be gone, the hook may
// already be unbound (a rolled-back bind that never happened).
func (g *Graph) dropEndpoint(id ConnectionID) {
	n, ok := g.nodes.Get(arena.Key(id.Node))
	if !ok {
		return
	}
	port, ok := n.port(id.Port)
	if !ok {
		return
	}
	// Intentionally ignores BadHook/NoConnection: repair is idempotent.
	_, _ = port.dropConnection(id.Hook)
}

// PortDataType resolves a port's data type across the graph. Returns
// false when either id does not resolve.
func (g *Graph) PortDataType(id NodeID, p PortID) (DataType, bool) {
	n, ok := g.nodes.Get(arena.Key(id))
	if !ok {
		return nil, false
	}

	return n.PortDataType(p)
}

// AvailableHook resolves a port's available hook across the graph.
func (g *Graph) AvailableHook(id NodeID, p PortID) (HookID, bool) {
	n, ok := g.nodes.Get(arena.Key(id))
	if !ok {
		return HookID{}, false
	}

	return n.AvailableHook(p)
}

// Endpoint builds the ConnectionID for the port's current available
// hook, the value a connect gesture needs. Returns false when the port
// is unknown or has no free slot.
func (g *Graph) Endpoint(id NodeID, p PortID) (ConnectionID, bool) {
	h, ok := g.AvailableHook(id, p)
	if !ok {
		return ConnectionID{}, false
	}

	return ConnectionID{Node: id, Port: p, Hook: h}, true
}

// Connections lists every live connection exactly once, seen from its
// output endpoint, in deterministic order. The UI draws its curves
// from this list; tests check the symmetry invariant against it.
func (g *Graph) Connections() []ConnectionPair {
	var out []ConnectionPair
	for _, id := range g.Nodes() {
		n, _ := g.nodes.Get(arena.Key(id))
		for _, p := range n.Outputs() {
			port, _ := n.port(p)
			for _, hs := range port.Hooks() {
				if !hs.Bound {
					continue
				}
				out = append(out, ConnectionPair{
					Output: ConnectionID{Node: id, Port: p, Hook: hs.ID},
					Input:  hs.Remote,
				})
			}
		}
	}

	return out
}

// ConnectionCount returns the number of live connections.
func (g *Graph) ConnectionCount() int { return len(g.Connections()) }

// mustNode resolves a NodeID on an already-validated internal path.
// Failure here means the arena is corrupt, which is a fatal invariant
// violation, never reachable from external input.
func (g *Graph) mustNode(id NodeID) *Node {
	n, ok := g.nodes.Get(arena.Key(id))
	if !ok {
		panic(fmt.Sprintf("graph: internal invariant violated: node %s vanished", id))
	}

	return n
}
