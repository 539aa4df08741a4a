package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph, node, and port operations. All public
// failures wrap one of these; match with errors.Is.
var (
	// ErrBadNode indicates a NodeID that does not resolve (never
	// existed, or the node was removed).
	ErrBadNode = errors.New("graph: node not found")

	// ErrBadPort indicates a PortID that does not exist on the target
	// node. Always a stale-ID bug in the caller, never transient.
	ErrBadPort = errors.New("graph: port not found on node")

	// ErrBadHook indicates a HookID that does not exist on the target
	// port. Always a stale-ID bug in the caller, never transient.
	ErrBadHook = errors.New("graph: hook not found on port")

	// ErrHookOccupied indicates a connect against a hook that already
	// holds a binding, or against a port with no free capacity.
	// Recoverable: re-query AvailableHook and retry or abort.
	ErrHookOccupied = errors.New("graph: hook already occupied")

	// ErrNoConnection indicates a drop against a hook that holds no
	// binding. Recoverable.
	ErrNoConnection = errors.New("graph: hook has no connection")

	// ErrBadOutputNode indicates the output-side NodeID of a requested
	// connection no longer exists.
	ErrBadOutputNode = errors.New("graph: output node not found")

	// ErrBadInputNode indicates the input-side NodeID of a requested
	// connection no longer exists.
	ErrBadInputNode = errors.New("graph: input node not found")

	// ErrWrongSide indicates a connection endpoint on the wrong port
	// side: the output endpoint must name an output port and the input
	// endpoint an input port.
	ErrWrongSide = errors.New("graph: connection endpoint on wrong port side")

	// ErrSameNode indicates a connection whose endpoints sit on one
	// node. Self-loops are rejected regardless of type compatibility.
	ErrSameNode = errors.New("graph: connection endpoints on same node")

	// ErrTypeMismatch indicates the output's data type is not
	// compatible with the input's data type.
	ErrTypeMismatch = errors.New("graph: incompatible data types")

	// ErrUnknownDataType indicates snapshot restore met a type name the
	// resolver does not know.
	ErrUnknownDataType = errors.New("graph: unknown data type in snapshot")
)

// PortError reports a failed port operation together with the PortID
// that was at fault, so callers can tell "no such port" apart from
// "port rejected it" and know which side misbehaved.
type PortError struct {
	Port PortID
	Err  error
}

// Error implements the error interface.
func (e *PortError) Error() string {
	return fmt.Sprintf("port %s: %v", e.Port, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *PortError) Unwrap() error { return e.Err }

// ConnectionEnd names which endpoint of an attempted connection failed.
type ConnectionEnd uint8

const (
	// OutputEnd marks the producing endpoint.
	OutputEnd ConnectionEnd = iota + 1
	// InputEnd marks the receiving endpoint.
	InputEnd
)

// String returns "output" or "input".
func (e ConnectionEnd) String() string {
	if e == OutputEnd {
		return "output"
	}

	return "input"
}

// ConnectionError reports a failed AddConnection with full provenance:
// which end failed, on which node, and the inner node- or port-level
// cause.
type ConnectionError struct {
	End  ConnectionEnd
	Node NodeID
	Err  error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s end %s: %v", e.End, e.Node, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is.
func (e *ConnectionError) Unwrap() error { return e.Err }
