package json

import (
	"bytes"
	"encoding/json"

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
	enc := json.NewEncoder(c.buf)

	if err := enc.Encode(&item); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[Item]) Decode(data []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		var zero Item
		return zero, err
	}

	return item, nil
}
