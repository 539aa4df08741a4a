// Package eval pulls values through a node graph: asking for an output
// endpoint recursively evaluates everything upstream of it, memoizing
// each node's outputs so shared subgraphs are computed once.
//
// The engine knows nothing about what nodes compute; the caller
// supplies a single NodeFunc that maps a node's resolved input values
// (keyed by input port name) to its output values (keyed by output
// port name). Inputs resolve in this order: bound connections first
// (one value per bound hook, delivered as a slice when a port holds
// several), then the port's inline constant for disconnected
// connection-or-constant inputs. Disconnected connection-only inputs
// are simply absent from the map.
//
// Cycles are detected during the pull and reported as ErrCycle rather
// than recursing forever. Call Reset after mutating the graph to
// discard memoized values.
package eval
