// Package editor implements the connection-drag gesture on top of the
// graph engine, plus the small amount of editor-side state (node
// order, selection) the rendering layer needs but the engine does not.
//
// The gesture is a three-state machine:
//
//	Idle ──BeginDrag──▶ Dragging ──CompleteDrag──▶ Idle (connected or rejected)
//	                        │
//	                        └────CancelDrag──────▶ Idle
//
// BeginDrag from an empty (available) hook starts a new connection.
// BeginDrag from an occupied hook starts a move: the existing binding
// is dropped and the drag continues from its far endpoint, exactly as
// if the user had dropped the wire and picked up its loose end.
//
// CompleteDrag guards the release target: it must sit on the opposite
// side, on a different node, carry a compatible data type, and expose
// an available hook. A release over an invalid target simply ends the
// gesture; the graph is untouched and the structured error says why.
//
// The editor holds no reference to a Graph; every gesture call takes
// the graph it operates on, so one editor can drive any number of
// documents.
package editor
