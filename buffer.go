// Package wheel provides a fixed-capacity overwrite buffer: once full, every
// push silently replaces the oldest item. The buffer keeps no read cursor;
// any number of independent iterators can traverse the live items without
// consuming them.
//
// The buffer never allocates. It works entirely within a caller-supplied
// [Store] whose length fixes the capacity for the buffer's lifetime.
package wheel

type Buffer[Item any] struct {
	store Store[Item]

	// Next slot to overwrite. Meaningless while the store is empty.
	pos int

	// Lifetime push count. Never decreases, never wraps back.
	total int

	metrics *metrics
}

// New creates a buffer on top of store. The capacity is store.Len() and never
// changes. The buffer writes through to the store, so the caller may either
// keep its own reference to the storage (shared view) or hand it off
// entirely; the buffer makes no copy in either case.
//
// A zero-length store is accepted: all queries report an empty buffer, but
// [Buffer.Push] must not be called on it.
func New[Item any](store Store[Item], options ...Option[Item]) *Buffer[Item] {
	cfg := newConfig(options...)
	return &Buffer[Item]{
		store:   store,
		metrics: cfg.metrics,
	}
}

// NewSlice creates a buffer backed by storage. Shorthand for
// New(Slice(storage)).
func NewSlice[Item any](storage []Item, options ...Option[Item]) *Buffer[Item] {
	return New(Slice[Item](storage), options...)
}

// Push overwrites the next slot with item. Once the buffer is full, exactly
// one previously-live item is lost per push; that is the defining behaviour
// of the structure, not an error.
//
// Push panics if the buffer has zero capacity. Pushing requires exclusive
// access: callers in concurrent environments must serialize pushes and must
// not push while another goroutine iterates.
func (b *Buffer[Item]) Push(item Item) {
	c := b.store.Len()
	if c == 0 {
		panic("push into zero-capacity buffer")
	}

	b.store.Set(b.pos, item)
	b.total++
	b.pos = (b.pos + 1) % c

	if b.metrics != nil {
		b.metrics.pushes.Inc()
		if b.total > c {
			b.metrics.overwrites.Inc()
		}
		b.metrics.items.Set(float64(b.Len()))
	}
}

// Capacity returns the number of slots in the backing store.
func (b *Buffer[Item]) Capacity() int {
	return b.store.Len()
}

// Total returns the lifetime number of pushes. Comparing totals taken before
// and after iteration lets callers detect overwrites externally.
func (b *Buffer[Item]) Total() int {
	return b.total
}

// Len returns the number of live items: min(Total, Capacity).
func (b *Buffer[Item]) Len() int {
	return min(b.total, b.store.Len())
}

// Empty reports whether the buffer holds no live items.
func (b *Buffer[Item]) Empty() bool {
	return b.Len() == 0
}

// readStart returns the physical slot of the oldest live item. Only valid
// for a non-zero capacity.
func (b *Buffer[Item]) readStart() int {
	c := b.store.Len()
	// Add c before the modulo so the intermediate never goes negative.
	return (b.pos - b.Len()%c + c) % c
}
