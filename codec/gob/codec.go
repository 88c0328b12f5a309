package gob

import (
	"bytes"
	"encoding/gob"

	"github.com/teenjuna/wheel/codec"
)

type Codec[Item any] struct {
	buf *bytes.Buffer
}

var _ codec.Codec[any] = (*Codec[any])(nil)

func New[Item any]() *Codec[Item] {
	return &Codec[Item]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[Item]) Encode(item Item) ([]byte, error) {
	c.buf.Reset()
	// A fresh encoder per item so every blob is self-describing and can be
	// decoded in isolation.
	enc := gob.NewEncoder(c.buf)

	if err := enc.Encode(&item); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[Item]) Decode(data []byte) (Item, error) {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var item Item
	if err := dec.Decode(&item); err != nil {
		var zero Item
		return zero, err
	}

	return item, nil
}
