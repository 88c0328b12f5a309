package wheel

import "iter"

// Iterator is a single-pass, read-only traversal over a buffer's live items,
// oldest first. It holds no copy of the data: every step reads through the
// buffer, so a slot overwritten after the iterator was created yields its new
// value, and the bound is re-evaluated from the buffer's live length on every
// step. Creating an iterator is free of side effects; any number may exist
// at once as long as nobody pushes concurrently.
type Iterator[Item any] struct {
	buffer *Buffer[Item]
	cur    int
}

// Iterator returns a fresh iterator over b with its cursor at the oldest
// live item.
func (b *Buffer[Item]) Iterator() *Iterator[Item] {
	return &Iterator[Item]{buffer: b}
}

// Next returns the item at the cursor and advances past it. The second
// return is false once the live items are exhausted, and stays false on
// every later call.
func (it *Iterator[Item]) Next() (Item, bool) {
	b := it.buffer
	if it.cur >= b.Len() {
		var zero Item
		return zero, false
	}

	cur := it.cur
	it.cur++

	return b.store.At((b.readStart() + cur) % b.store.Len()), true
}

// Nth skips n items and returns the one after them, advancing the cursor
// past everything returned or skipped. Nth(0) is equivalent to [Iterator.Next].
// The skip is clamped to the buffer's live length, so overshooting simply
// exhausts the iterator; it runs in O(1) either way.
func (it *Iterator[Item]) Nth(n int) (Item, bool) {
	if n > 0 {
		it.cur += min(n, it.buffer.Len())
	}
	return it.Next()
}

// Iter returns the live items as a sequence, oldest first. Each call starts
// a new traversal.
func (b *Buffer[Item]) Iter() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		it := b.Iterator()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
