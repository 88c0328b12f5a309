package wheel

// Store is the backing storage of a [Buffer]: a fixed-length sequence of
// slots with random read and write access. Its length never changes for the
// lifetime of the buffer built on top of it.
//
// Implementations are not considered thread-safe and each instance backs a
// single buffer.
type Store[Item any] interface {
	// Len returns the number of slots. It must be constant.
	Len() int
	// At returns the item in slot i, 0 <= i < Len().
	At(i int) Item
	// Set overwrites slot i with item, 0 <= i < Len().
	Set(i int, item Item)
}

// Slice adapts a plain slice into a [Store]. The buffer writes through to the
// underlying array, so the caller may keep the slice and observe overwrites
// directly, or hand it off and forget about it.
type Slice[Item any] []Item

var _ Store[any] = (Slice[any])(nil)

func (s Slice[Item]) Len() int {
	return len(s)
}

func (s Slice[Item]) At(i int) Item {
	return s[i]
}

func (s Slice[Item]) Set(i int, item Item) {
	s[i] = item
}
