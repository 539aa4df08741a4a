package graph

import "github.com/katalvlaran/hookwire/arena"

// namedPort pairs a display name with the port's arena key, preserving
// declaration order. Ports do not know their own names or ids.
type namedPort struct {
	name string
	key  arena.Key
}

// PortBinding is one severed binding returned by node-level bulk drops,
// tagged with the PortID it came from.
type PortBinding struct {
	Port   PortID
	Hook   HookID
	Remote ConnectionID
}

// Node owns a fixed set of input and output ports plus arbitrary user
// content. It is the sole mutator of its ports: every port operation is
// dispatched through the node by PortID, and port-level errors come
// back tagged with the offending PortID.
type Node struct {
	id       NodeID
	label    string
	userData any

	inputs   arena.Arena[*Port]
	outputs  arena.Arena[*Port]
	inOrder  []namedPort
	outOrder []namedPort

	// dropped is the graph's shared dropped-connections list. Every
	// severed binding's remote endpoint lands here so the graph can
	// repair the other side after the current mutation returns.
	dropped *droppedList
}

// ID returns the node's identity within its graph.
func (n *Node) ID() NodeID { return n.id }

// Label returns the display label.
func (n *Node) Label() string { return n.label }

// SetLabel replaces the display label.
func (n *Node) SetLabel(label string) { n.label = label }

// UserData returns the caller-supplied payload.
func (n *Node) UserData() any { return n.userData }

// SetUserData replaces the caller-supplied payload.
func (n *Node) SetUserData(v any) { n.userData = v }

// AddInput appends an input port with the given name and data type.
// Returns the new PortID.
func (n *Node) AddInput(name string, dt DataType, opts ...PortOption) PortID {
	k := n.inputs.Insert(newPort(dt, SideInput, opts...))
	n.inOrder = append(n.inOrder, namedPort{name: name, key: k})

	return PortID{Side: SideInput, Key: k}
}

// AddOutput appends an output port with the given name and data type.
// Returns the new PortID.
func (n *Node) AddOutput(name string, dt DataType, opts ...PortOption) PortID {
	k := n.outputs.Insert(newPort(dt, SideOutput, opts...))
	n.outOrder = append(n.outOrder, namedPort{name: name, key: k})

	return PortID{Side: SideOutput, Key: k}
}

// RemovePort deletes a port from the node, first severing every
// connection it held. The severed remotes are queued for repair, which
// runs when the surrounding graph operation returns.
func (n *Node) RemovePort(p PortID) ([]HookBinding, error) {
	port, ok := n.port(p)
	if !ok {
		return nil, &PortError{Port: p, Err: ErrBadPort}
	}
	severed := port.dropAllConnections()
	for _, s := range severed {
		n.dropped.push(s.Remote)
	}
	switch p.Side {
	case SideInput:
		n.inputs.Remove(p.Key)
		n.inOrder = removeNamed(n.inOrder, p.Key)
	case SideOutput:
		n.outputs.Remove(p.Key)
		n.outOrder = removeNamed(n.outOrder, p.Key)
	}

	return severed, nil
}

func removeNamed(order []namedPort, key arena.Key) []namedPort {
	out := order[:0]
	for _, np := range order {
		if np.key != key {
			out = append(out, np)
		}
	}

	return out
}

// port resolves a PortID against the side's arena.
func (n *Node) port(p PortID) (*Port, bool) {
	switch p.Side {
	case SideInput:
		return get(&n.inputs, p.Key)
	case SideOutput:
		return get(&n.outputs, p.Key)
	default:
		return nil, false
	}
}

func get(a *arena.Arena[*Port], k arena.Key) (*Port, bool) {
	p, ok := a.Get(k)
	if !ok {
		return nil, false
	}

	return p, true
}

// Port returns the port addressed by p for read-only inspection, or
// false on an unknown id.
func (n *Node) Port(p PortID) (*Port, bool) { return n.port(p) }

// Inputs returns the node's input PortIDs in declaration order.
func (n *Node) Inputs() []PortID {
	out := make([]PortID, len(n.inOrder))
	for i, np := range n.inOrder {
		out[i] = PortID{Side: SideInput, Key: np.key}
	}

	return out
}

// Outputs returns the node's output PortIDs in declaration order.
func (n *Node) Outputs() []PortID {
	out := make([]PortID, len(n.outOrder))
	for i, np := range n.outOrder {
		out[i] = PortID{Side: SideOutput, Key: np.key}
	}

	return out
}

// InputByName finds an input port by display name.
func (n *Node) InputByName(name string) (PortID, bool) {
	for _, np := range n.inOrder {
		if np.name == name {
			return PortID{Side: SideInput, Key: np.key}, true
		}
	}

	return PortID{}, false
}

// OutputByName finds an output port by display name.
func (n *Node) OutputByName(name string) (PortID, bool) {
	for _, np := range n.outOrder {
		if np.name == name {
			return PortID{Side: SideOutput, Key: np.key}, true
		}
	}

	return PortID{}, false
}

// PortName returns the display name of the port, or false on an
// unknown id.
func (n *Node) PortName(p PortID) (string, bool) {
	order := n.inOrder
	if p.Side == SideOutput {
		order = n.outOrder
	}
	for _, np := range order {
		if np.key == p.Key {
			return np.name, true
		}
	}

	return "", false
}

// PortDataType returns the data type of the addressed port. Returns
// false on an unknown port rather than erroring: the UI layer probes
// speculatively.
func (n *Node) PortDataType(p PortID) (DataType, bool) {
	port, ok := n.port(p)
	if !ok {
		return nil, false
	}

	return port.DataType(), true
}

// AvailableHook returns the addressed port's slot reserved for the
// next connection, or false when the port is unknown or full.
func (n *Node) AvailableHook(p PortID) (HookID, bool) {
	port, ok := n.port(p)
	if !ok {
		return HookID{}, false
	}

	return port.AvailableHook()
}

// Hooks returns the hook states of the addressed port, or false on an
// unknown id.
func (n *Node) Hooks(p PortID) ([]HookState, bool) {
	port, ok := n.port(p)
	if !ok {
		return nil, false
	}

	return port.Hooks(), true
}

// InputValue returns the inline constant of the addressed input port.
func (n *Node) InputValue(p PortID) (any, bool) {
	if p.Side != SideInput {
		return nil, false
	}
	port, ok := n.port(p)
	if !ok {
		return nil, false
	}

	return port.Value(), true
}

// SetInputValue replaces the inline constant of the addressed input
// port.
func (n *Node) SetInputValue(p PortID, v any) error {
	if p.Side != SideInput {
		return &PortError{Port: p, Err: ErrBadPort}
	}
	port, ok := n.port(p)
	if !ok {
		return &PortError{Port: p, Err: ErrBadPort}
	}
	port.value = v

	return nil
}

// connect dispatches a token-guarded bind to the addressed port.
// BadPort if the PortID does not exist on this node; port-level
// rejections come back wrapped with the PortID.
func (n *Node) connect(p PortID, h HookID, tok *connToken) error {
	port, ok := n.port(p)
	if !ok {
		return &PortError{Port: p, Err: ErrBadPort}
	}
	if err := port.connect(h, tok); err != nil {
		return &PortError{Port: p, Err: err}
	}

	return nil
}

// DropConnection severs the binding held by the addressed hook and
// returns the endpoint it was connected to. The remote is also queued
// for repair, so the complementary side is cleaned up when the current
// graph operation returns.
func (n *Node) DropConnection(p PortID, h HookID) (ConnectionID, error) {
	port, ok := n.port(p)
	if !ok {
		return ConnectionID{}, &PortError{Port: p, Err: ErrBadPort}
	}
	remote, err := port.dropConnection(h)
	if err != nil {
		return ConnectionID{}, &PortError{Port: p, Err: err}
	}
	n.dropped.push(remote)

	return remote, nil
}

// DropAllConnections severs every binding on every port of the node,
// tagging each severed binding with the PortID it came from. All
// remotes are queued for repair. Used when the node is deleted.
func (n *Node) DropAllConnections() []PortBinding {
	var severed []PortBinding
	collect := func(side PortSide, order []namedPort, ports *arena.Arena[*Port]) {
		for _, np := range order {
			port, ok := ports.Get(np.key)
			if !ok {
				continue
			}
			for _, hb := range port.dropAllConnections() {
				severed = append(severed, PortBinding{
					Port:   PortID{Side: side, Key: np.key},
					Hook:   hb.Hook,
					Remote: hb.Remote,
				})
				n.dropped.push(hb.Remote)
			}
		}
	}
	collect(SideInput, n.inOrder, &n.inputs)
	collect(SideOutput, n.outOrder, &n.outputs)

	return severed
}
