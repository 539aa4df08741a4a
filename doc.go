// Package hookwire is an in-memory connection engine for node-graph
// editors: nodes carry named, typed ports, ports carry hooks, and a
// connection is a symmetric pair of hook endpoints that always repairs
// itself when either side goes away.
//
// 🚀 What is hookwire?
//
//	A small, dependency-light toolkit that brings together:
//		• arena/     — generational-index arenas: stale handles stay dead
//		• graph/     — nodes, ports, hooks, two-phase connection establishment,
//		               drop propagation, structural snapshots
//		• catalog/   — data types, node templates, the finder registry
//		• editor/    — the drag gesture state machine and editor bookkeeping
//		• traverse/  — BFS, upstream/downstream sets, topological order
//		• eval/      — memoized demand-driven evaluation of output ports
//		• cmd/hookwire — compile TOML graph descriptions, check wiring, stats
//
// ✨ Why choose hookwire?
//
//   - Safe handles – removing a node or port invalidates every id that
//     pointed at it, detectably
//   - Symmetric wiring – both endpoints of a connection always agree,
//     and severing one side cleans up the other
//   - Pure Go – no cgo, no UI framework baggage
//   - Extensible – bring your own DataType, node templates, and NodeFunc
//
// Quick ASCII example:
//
//	source.out ──▸ sink.in
//
//	one output hook and one input hook, each recording the other.
//
// Dive into the package docs for the connection protocol, the drop
// list discipline, and snapshot persistence.
//
//	go get github.com/katalvlaran/hookwire
package hookwire
