package editor

import (
	"errors"

	"github.com/katalvlaran/hookwire/graph"
)

// Sentinel errors for gesture handling.
var (
	// ErrGestureInProgress is returned by BeginDrag while a drag is
	// already active.
	ErrGestureInProgress = errors.New("editor: drag already in progress")

	// ErrNoGesture is returned by CompleteDrag with no active drag.
	ErrNoGesture = errors.New("editor: no drag in progress")

	// ErrBadOrigin indicates the drag origin does not resolve to a
	// hook (stale id, constant-only port, removed node).
	ErrBadOrigin = errors.New("editor: drag origin does not resolve")

	// ErrBadTarget indicates the release target node or port does not
	// resolve.
	ErrBadTarget = errors.New("editor: release target does not resolve")

	// ErrSameNode indicates origin and target sit on one node.
	ErrSameNode = errors.New("editor: cannot connect a node to itself")

	// ErrSameSide indicates origin and target are both inputs or both
	// outputs.
	ErrSameSide = errors.New("editor: endpoints must be on opposite sides")

	// ErrIncompatibleTypes indicates the ports' data types do not
	// match.
	ErrIncompatibleTypes = errors.New("editor: incompatible data types")

	// ErrPortFull indicates the target port has no available hook.
	ErrPortFull = errors.New("editor: target port has no available hook")
)

// Phase is the gesture state.
type Phase uint8

const (
	// PhaseIdle means no drag is active.
	PhaseIdle Phase = iota
	// PhaseDragging means a wire end follows the pointer.
	PhaseDragging
)

// Editor tracks one in-progress connection gesture and the editor-side
// node bookkeeping (draw order, selection). Not safe for concurrent
// use; an immediate-mode UI drives it from a single loop.
type Editor struct {
	phase  Phase
	origin graph.ConnectionID

	order    []graph.NodeID
	selected graph.NodeID
	hasSel   bool
}

// New constructs an idle Editor.
func New() *Editor { return &Editor{} }

// Phase returns the current gesture state.
func (e *Editor) Phase() Phase { return e.phase }

// DragOrigin returns the endpoint the active drag started from.
func (e *Editor) DragOrigin() (graph.ConnectionID, bool) {
	return e.origin, e.phase == PhaseDragging
}

// BeginDrag starts a gesture from the given endpoint. Dragging from an
// occupied hook becomes a move: the binding is dropped (both sides
// repaired) and the drag continues from the surviving far endpoint.
func (e *Editor) BeginDrag(g *graph.Graph, origin graph.ConnectionID) error {
	if e.phase == PhaseDragging {
		return ErrGestureInProgress
	}
	n, ok := g.Node(origin.Node)
	if !ok {
		return ErrBadOrigin
	}
	hooks, ok := n.Hooks(origin.Port)
	if !ok {
		return ErrBadOrigin
	}
	var state *graph.HookState
	for i := range hooks {
		if hooks[i].ID == origin.Hook {
			state = &hooks[i]
			break
		}
	}
	if state == nil {
		return ErrBadOrigin
	}

	if state.Bound {
		// Move gesture: detach and pick up the loose end. The repair
		// pass frees the remote's hook slot and re-arms the port, so
		// the returned id is stale; re-resolve the live hook.
		remote, err := g.DropConnection(origin)
		if err != nil {
			return err
		}
		loose, ok := g.Endpoint(remote.Node, remote.Port)
		if !ok {
			return ErrBadOrigin
		}
		origin = loose
	}

	e.phase = PhaseDragging
	e.origin = origin

	return nil
}

// CancelDrag discards the in-progress gesture. Releasing over empty
// canvas is exactly this: immediate, local, nothing to unwind.
func (e *Editor) CancelDrag() {
	e.phase = PhaseIdle
	e.origin = graph.ConnectionID{}
}

// CompleteDrag releases the drag over the given port. On a valid
// target the connection is established and returned; on any rejection
// the gesture ends with the graph untouched and the error reporting
// which guard failed. Either way the editor returns to Idle.
func (e *Editor) CompleteDrag(g *graph.Graph, node graph.NodeID, port graph.PortID) (graph.ConnectionPair, error) {
	if e.phase != PhaseDragging {
		return graph.ConnectionPair{}, ErrNoGesture
	}
	origin := e.origin
	e.CancelDrag()

	targetType, ok := g.PortDataType(node, port)
	if !ok {
		return graph.ConnectionPair{}, ErrBadTarget
	}
	if node == origin.Node {
		return graph.ConnectionPair{}, ErrSameNode
	}
	if port.Side == origin.Port.Side {
		return graph.ConnectionPair{}, ErrSameSide
	}

	originType, ok := g.PortDataType(origin.Node, origin.Port)
	if !ok {
		return graph.ConnectionPair{}, ErrBadOrigin
	}
	outType, inType := originType, targetType
	if origin.Port.Side == graph.SideInput {
		outType, inType = targetType, originType
	}
	if !outType.CompatibleWith(inType) {
		return graph.ConnectionPair{}, ErrIncompatibleTypes
	}

	target, ok := g.Endpoint(node, port)
	if !ok {
		return graph.ConnectionPair{}, ErrPortFull
	}

	pair := graph.ConnectionPair{Output: origin, Input: target}
	if origin.Port.Side == graph.SideInput {
		pair = graph.ConnectionPair{Output: target, Input: origin}
	}
	if err := g.AddConnection(pair.Output, pair.Input); err != nil {
		return graph.ConnectionPair{}, err
	}

	return pair, nil
}

// Track registers a node at the top of the draw order. Call it after
// Graph.AddNode.
func (e *Editor) Track(id graph.NodeID) {
	e.order = append(e.order, id)
}

// Forget removes a node from the draw order and clears the selection
// if it pointed there. Call it after Graph.RemoveNode.
func (e *Editor) Forget(id graph.NodeID) {
	out := e.order[:0]
	for _, n := range e.order {
		if n != id {
			out = append(out, n)
		}
	}
	e.order = out
	if e.hasSel && e.selected == id {
		e.hasSel = false
		e.selected = graph.NodeID{}
	}
}

// Select marks a node selected and raises it to the top of the draw
// order.
func (e *Editor) Select(id graph.NodeID) {
	e.Forget(id)
	e.order = append(e.order, id)
	e.selected = id
	e.hasSel = true
}

// Selected returns the selected node, if any.
func (e *Editor) Selected() (graph.NodeID, bool) {
	return e.selected, e.hasSel
}

// Order returns the draw order, bottom to top.
func (e *Editor) Order() []graph.NodeID {
	out := make([]graph.NodeID, len(e.order))
	copy(out, e.order)

	return out
}
