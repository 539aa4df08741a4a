package arena

import "fmt"

// Key addresses one occupied slot of an Arena. A Key remains valid until
// its value is removed; afterwards it never resolves again, even if the
// slot is reused. The zero Key is "no key" and never resolves.
type Key struct {
	idx uint32
	gen uint32
}

// IsZero reports whether k is the zero "no key" value.
func (k Key) IsZero() bool { return k.gen == 0 }

// Index returns the slot index of the key. Two live keys with equal
// Index always refer to the same slot; use full Key equality to compare
// identity across generations.
func (k Key) Index() int { return int(k.idx) }

// String renders the key as "sN@gM" for diagnostics.
func (k Key) String() string {
	if k.IsZero() {
		return "s-"
	}
	return fmt.Sprintf("s%d@g%d", k.idx, k.gen)
}

// slot is a single storage cell: its value, the generation of the
// current (or next) occupant, and an occupancy flag.
type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// Arena is a generational-index slot store. The zero value is ready to
// use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of vacant slots, reused LIFO
	count int
}

// New constructs an empty Arena.
func New[T any]() *Arena[T] { return &Arena[T]{} }

// Insert stores v and returns its Key.
// Complexity: O(1) amortized.
func (a *Arena[T]) Insert(v T) Key {
	return a.InsertWithKey(func(Key) T { return v })
}

// InsertWithKey allocates a slot first, then calls f with the resulting
// Key to produce the value. Useful when the stored value needs to know
// its own identity.
// Complexity: O(1) amortized.
func (a *Arena[T]) InsertWithKey(f func(Key) T) Key {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{gen: 1})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	k := Key{idx: idx, gen: s.gen}
	s.value = f(k)
	s.occupied = true
	a.count++

	return k
}

// Get returns the value stored under k. The second result is false when
// k is zero, stale, or out of range.
// Complexity: O(1)
func (a *Arena[T]) Get(k Key) (T, bool) {
	if p, ok := a.Ptr(k); ok {
		return *p, true
	}
	var zero T

	return zero, false
}

// Ptr returns a pointer to the value stored under k, allowing in-place
// mutation. The second result is false when k does not resolve.
// Complexity: O(1)
func (a *Arena[T]) Ptr(k Key) (*T, bool) {
	if k.IsZero() || int(k.idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[k.idx]
	if !s.occupied || s.gen != k.gen {
		return nil, false
	}

	return &s.value, true
}

// Contains reports whether k currently resolves to a live value.
// Complexity: O(1)
func (a *Arena[T]) Contains(k Key) bool {
	_, ok := a.Ptr(k)
	return ok
}

// Remove deletes the value under k and returns it. The slot's
// generation is bumped so k (and any copy of it) permanently stops
// resolving. Returns false if k does not resolve.
// Complexity: O(1)
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	p, ok := a.Ptr(k)
	if !ok {
		return zero, false
	}
	v := *p
	s := &a.slots[k.idx]
	s.value = zero
	s.occupied = false
	s.gen++ // invalidate every outstanding Key for this occupant
	a.free = append(a.free, k.idx)
	a.count--

	return v, true
}

// Len returns the number of live values.
// Complexity: O(1)
func (a *Arena[T]) Len() int { return a.count }

// Keys returns the keys of all live values in ascending slot-index
// order. The order is deterministic for a given mutation history.
// Complexity: O(n) over allocated slots.
func (a *Arena[T]) Keys() []Key {
	out := make([]Key, 0, a.count)
	for i := range a.slots {
		if a.slots[i].occupied {
			out = append(out, Key{idx: uint32(i), gen: a.slots[i].gen})
		}
	}

	return out
}

// ForEach calls f for every live (Key, *value) pair in slot-index order.
// Iteration stops early if f returns false. f must not insert into or
// remove from the arena.
func (a *Arena[T]) ForEach(f func(Key, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		if !f(Key{idx: uint32(i), gen: s.gen}, &s.value) {
			return
		}
	}
}
