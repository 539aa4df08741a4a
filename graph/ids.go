package graph

import (
	"fmt"

	"github.com/katalvlaran/hookwire/arena"
)

// NodeID is a generational key into the graph's node arena. A NodeID
// issued for a removed node never resolves again.
type NodeID arena.Key

// IsZero reports whether the id is the zero "no node" value.
func (id NodeID) IsZero() bool { return arena.Key(id).IsZero() }

// String renders the id for diagnostics, e.g. "n(s2@g1)".
func (id NodeID) String() string { return "n(" + arena.Key(id).String() + ")" }

// HookID is a generational key into a port's hook arena: one connection
// slot on one port.
type HookID arena.Key

// IsZero reports whether the id is the zero "no hook" value.
func (id HookID) IsZero() bool { return arena.Key(id).IsZero() }

// String renders the id for diagnostics, e.g. "h(s0@g1)".
func (id HookID) String() string { return "h(" + arena.Key(id).String() + ")" }

// PortSide distinguishes the input and output port spaces of a node.
// Input and output ports are keyed independently, so a PortID is only
// meaningful together with its side.
type PortSide uint8

const (
	// SideInput marks a port that receives data.
	SideInput PortSide = iota + 1
	// SideOutput marks a port that produces data.
	SideOutput
)

// String returns "input" or "output".
func (s PortSide) String() string {
	switch s {
	case SideInput:
		return "input"
	case SideOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Opposite returns the complementary side.
func (s PortSide) Opposite() PortSide {
	if s == SideInput {
		return SideOutput
	}

	return SideInput
}

// PortID addresses one port on a node: a side plus a generational key
// into that side's port arena.
type PortID struct {
	Side PortSide
	Key  arena.Key
}

// IsZero reports whether the id is the zero "no port" value.
func (id PortID) IsZero() bool { return id.Side == 0 && id.Key.IsZero() }

// String renders the id for diagnostics, e.g. "input(s0@g1)".
func (id PortID) String() string {
	return fmt.Sprintf("%s(%s)", id.Side, id.Key)
}

// ConnectionID names exactly one endpoint of a connection: a hook on a
// port on a node. Every live connection is a pair of ConnectionIDs,
// each stored only inside its own endpoint's port; there is no global
// connection record.
type ConnectionID struct {
	Node NodeID
	Port PortID
	Hook HookID
}

// IsZero reports whether the id is the zero "no endpoint" value.
func (c ConnectionID) IsZero() bool {
	return c.Node.IsZero() && c.Port.IsZero() && c.Hook.IsZero()
}

// IsInput reports whether the endpoint sits on an input port.
func (c ConnectionID) IsInput() bool { return c.Port.Side == SideInput }

// IsOutput reports whether the endpoint sits on an output port.
func (c ConnectionID) IsOutput() bool { return c.Port.Side == SideOutput }

// String renders the full endpoint triple for diagnostics.
func (c ConnectionID) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Node, c.Port, c.Hook)
}

// ConnectionPair is one live connection seen from both ends. Output is
// always the producing endpoint and Input the receiving one.
type ConnectionPair struct {
	Output ConnectionID
	Input  ConnectionID
}
