// Package arena provides a generational-index arena: slot-based storage
// whose keys stay valid across unrelated insertions and removals, and
// whose stale keys are detectable rather than silently aliasing a new
// occupant.
//
// Each slot carries a generation counter. Removing a value bumps the
// slot's generation, so any Key issued for the old occupant stops
// resolving the moment the slot is freed — even after the slot is
// reused. This makes the arena suitable for self-referential structures
// (graphs of nodes holding keys to one another) where use-after-free
// must be a detectable condition, not undefined behavior.
//
// Core operations:
//
//	Insert(v)        — O(1), returns a fresh Key
//	InsertWithKey(f) — O(1), lets the value learn its own Key
//	Get / Ptr        — O(1), fail on stale or zero keys
//	Remove           — O(1), invalidates the Key permanently
//	Keys / ForEach   — deterministic slot-index order
//
// The zero Key never resolves; it is safe to use as "no key".
// Arena is not safe for concurrent use; callers synchronize externally.
package arena
