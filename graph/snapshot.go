package graph

import "fmt"

// Snapshot is the structural serialization of a graph: a node table,
// per-node port tables, and a connection table addressing endpoints by
// node index and port ordinal. It is plain data — marshal it with any
// codec. Restoring a snapshot reproduces the original connectivity
// exactly; generational ids are not preserved, only structure.
type Snapshot struct {
	Nodes       []NodeSnapshot `json:"nodes"`
	Connections []ConnSnapshot `json:"connections"`
}

// NodeSnapshot is one node's structural record.
type NodeSnapshot struct {
	Label    string         `json:"label"`
	UserData any            `json:"user_data,omitempty"`
	Inputs   []PortSnapshot `json:"inputs,omitempty"`
	Outputs  []PortSnapshot `json:"outputs,omitempty"`
}

// PortSnapshot is one port's structural record. DataType stores the
// type's name; a DataTypeResolver turns it back into a live value on
// restore.
type PortSnapshot struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Kind     string `json:"kind,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// ConnSnapshot is one connection addressed structurally: node indices
// into Snapshot.Nodes and port ordinals within each node's side.
type ConnSnapshot struct {
	FromNode int `json:"from_node"`
	FromPort int `json:"from_port"`
	ToNode   int `json:"to_node"`
	ToPort   int `json:"to_port"`
}

// Snapshot captures the graph's full structure in deterministic order.
func (g *Graph) Snapshot() *Snapshot {
	ids := g.Nodes()
	index := make(map[NodeID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	snap := &Snapshot{Nodes: make([]NodeSnapshot, len(ids))}
	for i, id := range ids {
		n := g.mustNode(id)
		snap.Nodes[i] = NodeSnapshot{
			Label:    n.Label(),
			UserData: n.UserData(),
			Inputs:   portSnapshots(n, n.Inputs()),
			Outputs:  portSnapshots(n, n.Outputs()),
		}
	}

	for _, pair := range g.Connections() {
		snap.Connections = append(snap.Connections, ConnSnapshot{
			FromNode: index[pair.Output.Node],
			FromPort: portOrdinal(g.mustNode(pair.Output.Node).Outputs(), pair.Output.Port),
			ToNode:   index[pair.Input.Node],
			ToPort:   portOrdinal(g.mustNode(pair.Input.Node).Inputs(), pair.Input.Port),
		})
	}

	return snap
}

func portSnapshots(n *Node, ports []PortID) []PortSnapshot {
	if len(ports) == 0 {
		return nil
	}
	out := make([]PortSnapshot, len(ports))
	for i, p := range ports {
		port, _ := n.Port(p)
		name, _ := n.PortName(p)
		ps := PortSnapshot{
			Name:     name,
			DataType: port.DataType().Name(),
			Capacity: port.Capacity(),
			Value:    port.Value(),
		}
		if p.Side == SideInput {
			ps.Kind = port.Kind().String()
		}
		out[i] = ps
	}

	return out
}

// portOrdinal finds the position of p within an ordered PortID list.
// Both come from the same already-validated node, so a miss is an
// internal invariant violation.
func portOrdinal(ports []PortID, p PortID) int {
	for i, q := range ports {
		if q == p {
			return i
		}
	}
	panic(fmt.Sprintf("graph: internal invariant violated: port %s not in its node's order", p))
}

// parseKind is the inverse of InputKind.String. Unknown strings map to
// ConnectionOnly, the zero kind, matching absent-field decoding.
func parseKind(s string) InputKind {
	switch s {
	case "constant_only":
		return ConstantOnly
	case "connection_or_constant":
		return ConnectionOrConstant
	default:
		return ConnectionOnly
	}
}

// Restore rebuilds a graph from a snapshot. The resolver maps stored
// data-type names back to live DataType values; an unknown name fails
// with ErrUnknownDataType. The restored graph's connectivity is
// identical to the snapshotted one.
func Restore(snap *Snapshot, resolve DataTypeResolver) (*Graph, error) {
	g := New()
	nodeIDs := make([]NodeID, len(snap.Nodes))
	inPorts := make([][]PortID, len(snap.Nodes))
	outPorts := make([][]PortID, len(snap.Nodes))

	var restoreErr error
	for i, ns := range snap.Nodes {
		nodeIDs[i] = g.AddNode(ns.Label, ns.UserData, func(n *Node) {
			for _, ps := range ns.Inputs {
				dt, ok := resolve(ps.DataType)
				if !ok {
					restoreErr = fmt.Errorf("%w: %q", ErrUnknownDataType, ps.DataType)
					return
				}
				p := n.AddInput(ps.Name, dt,
					WithCapacity(ps.Capacity),
					WithKind(parseKind(ps.Kind)),
					WithValue(ps.Value))
				inPorts[i] = append(inPorts[i], p)
			}
			for _, ps := range ns.Outputs {
				dt, ok := resolve(ps.DataType)
				if !ok {
					restoreErr = fmt.Errorf("%w: %q", ErrUnknownDataType, ps.DataType)
					return
				}
				outPorts[i] = append(outPorts[i], n.AddOutput(ps.Name, dt, WithCapacity(ps.Capacity)))
			}
		})
		if restoreErr != nil {
			return nil, restoreErr
		}
	}

	for _, c := range snap.Connections {
		if c.FromNode < 0 || c.FromNode >= len(snap.Nodes) ||
			c.ToNode < 0 || c.ToNode >= len(snap.Nodes) ||
			c.FromPort < 0 || c.FromPort >= len(outPorts[c.FromNode]) ||
			c.ToPort < 0 || c.ToPort >= len(inPorts[c.ToNode]) {
			return nil, fmt.Errorf("graph: snapshot connection %+v out of range", c)
		}
		output, ok := g.Endpoint(nodeIDs[c.FromNode], outPorts[c.FromNode][c.FromPort])
		if !ok {
			return nil, fmt.Errorf("graph: snapshot output port %+v has no free hook", c)
		}
		input, ok := g.Endpoint(nodeIDs[c.ToNode], inPorts[c.ToNode][c.ToPort])
		if !ok {
			return nil, fmt.Errorf("graph: snapshot input port %+v has no free hook", c)
		}
		if err := g.AddConnection(output, input); err != nil {
			return nil, fmt.Errorf("graph: restoring connection %+v: %w", c, err)
		}
	}

	return g, nil
}
