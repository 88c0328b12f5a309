package wheel_test

import (
	"slices"
	"testing"

	"github.com/teenjuna/wheel"
	"github.com/teenjuna/wheel/internal/testing/require"
)

var _ wheel.Store[any] = (wheel.Slice[any])(nil)

func TestBuffer(t *testing.T) {
	buf := make([]rune, 8)
	wb := wheel.NewSlice(buf)

	require.Equal(t, wb.Capacity(), 8)
	require.Equal(t, wb.Len(), 0)
	require.Equal(t, wb.Total(), 0)
	require.True(t, wb.Empty())

	wb.Push('H')
	wb.Push('e')
	wb.Push('l')

	require.Equal(t, wb.Len(), 3)
	require.Equal(t, wb.Total(), 3)
	require.False(t, wb.Empty())

	item, ok := wb.Iterator().Next()
	require.True(t, ok)
	require.Equal(t, item, 'H')

	for _, r := range "lo World" {
		wb.Push(r)
	}

	require.Equal(t, wb.Len(), 8)
	require.Equal(t, wb.Total(), 11)
	require.Equal(t, string(slices.Collect(wb.Iter())), "lo World")
}

func TestLenAndTotal(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7, 8, 100} {
		wb := wheel.NewSlice(make([]int, capacity))
		for m := range 3*capacity + 1 {
			require.Equal(t, wb.Total(), m)
			require.Equal(t, wb.Len(), min(m, capacity))
			wb.Push(m)
		}
	}
}

func TestOverwrite(t *testing.T) {
	wb := wheel.NewSlice(make([]rune, 3))

	wb.Push('a')
	wb.Push('b')
	wb.Push('c')
	wb.Push('d')

	require.Equal(t, wb.Len(), 3)
	require.Equal(t, wb.Total(), 4)
	require.Equal(t, slices.Collect(wb.Iter()), []rune{'b', 'c', 'd'})
}

func TestZeroCapacity(t *testing.T) {
	wb := wheel.NewSlice[int](nil)

	require.Equal(t, wb.Capacity(), 0)
	require.Equal(t, wb.Len(), 0)
	require.Equal(t, wb.Total(), 0)
	require.True(t, wb.Empty())

	_, ok := wb.Iterator().Next()
	require.False(t, ok)
	require.Equal(t, len(slices.Collect(wb.Iter())), 0)

	require.PanicWithError(t, "push into zero-capacity buffer", func() {
		wb.Push(1)
	})
}

func TestSharedStorage(t *testing.T) {
	storage := make([]int, 4)
	wb := wheel.NewSlice(storage)

	wb.Push(1)
	wb.Push(2)

	// No copy is taken: a write into the backing slice shows up in the
	// iteration output.
	storage[0] = 42
	require.Equal(t, slices.Collect(wb.Iter()), []int{42, 2})
}
