package wheel

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Text adapts a rune buffer into a character sink: incoming chunks are
// decomposed into runes and pushed one by one. It implements [io.Writer] and
// [io.StringWriter], so any formatting machinery (fmt.Fprintf and friends)
// can write straight into the buffer. Writes never fail; once the buffer is
// full they overwrite the oldest characters, which makes Text a natural
// keep-the-tail log window.
type Text struct {
	*Buffer[rune]
}

var (
	_ io.Writer       = (*Text)(nil)
	_ io.StringWriter = (*Text)(nil)
)

// NewText creates a text adapter over a rune buffer backed by storage.
func NewText(storage []rune, options ...Option[rune]) *Text {
	return &Text{Buffer: NewSlice(storage, options...)}
}

// Write pushes every rune encoded in p, in order. Invalid UTF-8 bytes are
// pushed as utf8.RuneError, the same way ranging over a string yields them.
// The returned error is always nil.
func (t *Text) Write(p []byte) (int, error) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		t.Push(r)
		i += size
	}
	return len(p), nil
}

// WriteString pushes every rune of s, in order. The returned error is
// always nil.
func (t *Text) WriteString(s string) (int, error) {
	for _, r := range s {
		t.Push(r)
	}
	return len(s), nil
}

// WriteRune pushes a single rune.
func (t *Text) WriteRune(r rune) (int, error) {
	t.Push(r)
	return utf8.RuneLen(r), nil
}

// String materializes the live characters, oldest first.
func (t *Text) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for r := range t.Iter() {
		sb.WriteRune(r)
	}
	return sb.String()
}
