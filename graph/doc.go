// Package graph is the connectivity engine behind an interactive
// node-graph editor: an arena of nodes with typed input/output ports,
// wired together by directed connections that can be created, dropped,
// and rewired live while the surrounding UI redraws every frame.
//
// # Model
//
// Identity is generational: NodeID, PortID, and HookID are keys into
// arenas (see package arena), so stale ids are detectable instead of
// aliasing a reused slot. A ConnectionID is the triple (node, port,
// hook) naming ONE endpoint of a connection; every live connection is
// a symmetric pair of ConnectionIDs, each stored only inside its own
// endpoint's port. There is no global connection record: either side
// may unilaterally sever the relationship.
//
// Ports own hooks — individual connection slots. A port keeps exactly
// one empty hook pre-allocated (the "available" hook) while its
// capacity allows, so the next drag-to-connect gesture always has a
// slot to land on. Bounded ports retire the empty slot at capacity;
// constant-only inputs never expose one.
//
// # Drop propagation
//
// Whenever a binding is severed — explicitly, as a side effect of a
// NodeMut closure, or because a node or port is deleted — the remote
// endpoint is queued on a shared dropped-connections list. Every
// graph-level operation drains that list before returning and severs
// each complement, so the symmetry invariant (A records B iff B
// records A) holds whenever control is outside the engine. The list
// exists for reentrancy within one call stack, not for parallelism;
// the Graph itself is single-threaded.
//
// AddConnection is two-phase and token-guarded: each endpoint binds
// against a one-shot token recording the complementary endpoint, the
// output side first. A token not consumed by a successful bind queues
// its complement for repair, so a partial failure rolls back cleanly
// and a failed connect is externally a no-op. Tokens are package
// private: an available hook is only ever consumed through
// Graph.AddConnection.
//
// # Errors
//
// Failures are structured, never stringly-typed: sentinels such as
// ErrBadPort, ErrHookOccupied and ErrBadOutputNode are wrapped in
// PortError / ConnectionError carrying the offending PortID or NodeID.
// Match with errors.Is. A full single-slot input rejects a second
// connection with ErrHookOccupied; it is never silently replaced
// (rewiring is an explicit drop-then-connect, see package editor).
//
// # Persistence
//
// Snapshot/Restore serialize the graph structurally (node table, port
// tables, connection table). Round-tripping reproduces identical
// connectivity; a DataTypeResolver rebinds stored type names to live
// DataType values.
package graph
