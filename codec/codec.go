// This package contains the main [Codec] interface and several implementations inside subpackages.
package codec

// Codec serializes single items for storage backends that keep their slots
// as raw bytes.
//
// Implementations are not considered thread-safe and each instance is used by a single store.
type Codec[Item any] interface {
	// Encode serializes an item into a byte slice.
	Encode(item Item) ([]byte, error)
	// Decode deserializes a byte slice back into an item.
	Decode(data []byte) (Item, error)
}
