package gob_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/teenjuna/wheel/codec"
	"github.com/teenjuna/wheel/codec/gob"
	"github.com/teenjuna/wheel/internal/testing/require"
)

var _ codec.Codec[any] = (*gob.Codec[any])(nil)

func TestCodec(t *testing.T) {
	type Item struct {
		ID string
		N1 int
		N2 float64
	}

	codec := gob.New[Item]()

	for i := range 100 {
		item := Item{
			ID: strconv.Itoa(i),
			N1: rand.IntN(1000),
			N2: rand.Float64() * 1000,
		}

		data, err := codec.Encode(item)
		require.Nil(t, err)
		require.NotEqual(t, len(data), 0)

		got, err := codec.Decode(data)
		require.Nil(t, err)
		require.Equal(t, got, item)
	}
}

func TestCodecBlobsAreSelfDescribing(t *testing.T) {
	codec := gob.New[string]()

	first, err := codec.Encode("first")
	require.Nil(t, err)
	second, err := codec.Encode("second")
	require.Nil(t, err)

	// Each blob decodes on its own, in any order.
	got, err := codec.Decode(second)
	require.Nil(t, err)
	require.Equal(t, got, "second")

	got, err = codec.Decode(first)
	require.Nil(t, err)
	require.Equal(t, got, "first")
}
