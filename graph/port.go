package graph

import "github.com/katalvlaran/hookwire/arena"

// InputKind describes how an input port produces its value: from
// incoming connections, from an inline constant, or either.
type InputKind uint8

const (
	// ConnectionOnly inputs accept connections and have no constant.
	ConnectionOnly InputKind = iota
	// ConstantOnly inputs hold an inline value and never expose an
	// available hook; they are excluded from connection gestures.
	ConstantOnly
	// ConnectionOrConstant inputs accept connections, falling back to
	// the inline constant while disconnected.
	ConnectionOrConstant
)

// String returns the kind's snapshot name.
func (k InputKind) String() string {
	switch k {
	case ConstantOnly:
		return "constant_only"
	case ConnectionOrConstant:
		return "connection_or_constant"
	default:
		return "connection_only"
	}
}

// Unbounded is the port capacity meaning "no connection limit".
const Unbounded = 0

// hook is one connection slot on a port: either empty (at most one
// empty hook exists per port, the "available" one) or bound to the
// remote endpoint of a live connection.
type hook struct {
	bound  bool
	remote ConnectionID
}

// HookState is the read-only view of one hook, exposed for rendering
// and diagnostics. Remote is zero when Bound is false.
type HookState struct {
	ID     HookID
	Remote ConnectionID
	Bound  bool
}

// HookBinding is one severed binding returned by bulk drops.
type HookBinding struct {
	Hook   HookID
	Remote ConnectionID
}

// PortOption configures a port at creation time.
type PortOption func(*Port)

// WithCapacity caps the number of simultaneously bound hooks.
// Values <= 0 mean Unbounded.
func WithCapacity(n int) PortOption {
	return func(p *Port) {
		if n < 0 {
			n = Unbounded
		}
		p.capacity = n
	}
}

// WithKind sets the input kind. Meaningful for input ports only;
// outputs are always ConnectionOnly.
func WithKind(k InputKind) PortOption {
	return func(p *Port) { p.kind = k }
}

// WithValue sets the inline constant for ConstantOnly and
// ConnectionOrConstant inputs.
func WithValue(v any) PortOption {
	return func(p *Port) { p.value = v }
}

// Port is one addressable connection point on a node. It owns its
// hooks, enforces the connection cap, and keeps exactly one empty
// "available" hook pre-allocated whenever capacity allows.
//
// All mutating methods are unexported: ports are mutated only through
// their owning Node, which in turn is driven by the Graph.
type Port struct {
	dataType DataType
	side     PortSide
	kind     InputKind
	capacity int // max bound hooks; Unbounded = no cap
	value    any
	hooks    arena.Arena[hook]
	avail    HookID // zero when no slot is available
}

// newPort builds a port and pre-allocates its first available hook
// unless the port never accepts connections.
func newPort(dt DataType, side PortSide, opts ...PortOption) *Port {
	p := &Port{dataType: dt, side: side}
	for _, opt := range opts {
		opt(p)
	}
	if side == SideOutput {
		p.kind = ConnectionOnly
	}
	p.recomputeAvailable()

	return p
}

// DataType returns the port's type descriptor.
func (p *Port) DataType() DataType { return p.dataType }

// Side reports whether this is an input or an output port.
func (p *Port) Side() PortSide { return p.side }

// Kind returns the input kind; outputs always report ConnectionOnly.
func (p *Port) Kind() InputKind { return p.kind }

// Capacity returns the connection cap (Unbounded = none).
func (p *Port) Capacity() int { return p.capacity }

// Value returns the inline constant, if any.
func (p *Port) Value() any { return p.value }

// AvailableHook returns the empty hook reserved for the next
// connection, or false when the port is full or constant-only.
// Side-effect free.
func (p *Port) AvailableHook() (HookID, bool) {
	if p.avail.IsZero() {
		return HookID{}, false
	}

	return p.avail, true
}

// BoundCount returns the number of hooks currently holding a binding.
func (p *Port) BoundCount() int {
	n := 0
	p.hooks.ForEach(func(_ arena.Key, h *hook) bool {
		if h.bound {
			n++
		}
		return true
	})

	return n
}

// Hooks returns the state of every hook in deterministic order, bound
// and available alike, so the UI can draw connections without touching
// internal state.
func (p *Port) Hooks() []HookState {
	out := make([]HookState, 0, p.hooks.Len())
	p.hooks.ForEach(func(k arena.Key, h *hook) bool {
		out = append(out, HookState{ID: HookID(k), Remote: h.remote, Bound: h.bound})
		return true
	})

	return out
}

// connect binds the hook h to the endpoint recorded in tok. The hook
// must exist and be empty. On success the token is consumed and the
// available hook is recomputed (possibly none, if the cap was reached).
func (p *Port) connect(h HookID, tok *connToken) error {
	hp, ok := p.hooks.Ptr(arena.Key(h))
	if !ok {
		return ErrBadHook
	}
	if hp.bound {
		return ErrHookOccupied
	}
	hp.bound = true
	hp.remote = tok.remote
	tok.consume()
	if p.avail == h {
		p.avail = HookID{}
	}
	p.recomputeAvailable()

	return nil
}

// dropConnection removes the binding held by hook h and returns the
// endpoint it was connected to, so the caller can repair the other
// side. The hook slot itself is freed; the available hook is
// recomputed, growing capacity back by one.
func (p *Port) dropConnection(h HookID) (ConnectionID, error) {
	hp, ok := p.hooks.Ptr(arena.Key(h))
	if !ok {
		return ConnectionID{}, ErrBadHook
	}
	if !hp.bound {
		return ConnectionID{}, ErrNoConnection
	}
	remote := hp.remote
	p.hooks.Remove(arena.Key(h))
	p.recomputeAvailable()

	return remote, nil
}

// dropAllConnections severs every binding on the port and returns all
// of them, used when the owning node is deleted.
func (p *Port) dropAllConnections() []HookBinding {
	var severed []HookBinding
	for _, k := range p.hooks.Keys() {
		hp, ok := p.hooks.Ptr(k)
		if !ok || !hp.bound {
			continue
		}
		severed = append(severed, HookBinding{Hook: HookID(k), Remote: hp.remote})
		p.hooks.Remove(k)
	}
	p.recomputeAvailable()

	return severed
}

// recomputeAvailable restores the invariant that the port holds exactly
// one empty hook iff it may accept another connection: constant-only
// ports never do, bounded ports stop at capacity, unbounded ports
// always keep one.
func (p *Port) recomputeAvailable() {
	if p.kind == ConstantOnly {
		p.avail = HookID{}
		return
	}

	var empty HookID
	bound := 0
	p.hooks.ForEach(func(k arena.Key, h *hook) bool {
		if h.bound {
			bound++
		} else {
			empty = HookID(k)
		}
		return true
	})

	if p.capacity != Unbounded && bound >= p.capacity {
		// Full: retire any empty slot until one frees up.
		if !empty.IsZero() {
			p.hooks.Remove(arena.Key(empty))
		}
		p.avail = HookID{}
		return
	}
	if empty.IsZero() {
		empty = HookID(p.hooks.Insert(hook{}))
	}
	p.avail = empty
}
