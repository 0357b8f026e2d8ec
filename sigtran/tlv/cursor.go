package tlv

import (
	"golang.org/x/exp/constraints"
)

// Cursor is a bounds-checked big-endian reader over an immutable byte slice.
// Every read verifies its bound first; a failed read returns *TruncatedError and does not move the cursor.
// The zero Cursor is empty.
type Cursor struct {
	b    []byte
	pos  int
	base int
}

// NewCursor creates a Cursor over a message buffer.
// Offsets reported by the cursor are relative to the start of b.
func NewCursor(b []byte) Cursor {
	return Cursor{b: b}
}

// Len returns the total size of the bounded region.
func (c Cursor) Len() int {
	return len(c.b)
}

// Remaining returns the number of unread octets.
func (c Cursor) Remaining() int {
	return len(c.b) - c.pos
}

// EOF returns true if there are no unread octets.
func (c Cursor) EOF() bool {
	return c.Remaining() == 0
}

// Offset returns the absolute offset of the next unread octet.
func (c Cursor) Offset() int {
	return c.base + c.pos
}

// Peek returns unread octets without consuming them.
func (c Cursor) Peek() []byte {
	return c.b[c.pos:]
}

func (c *Cursor) check(n int) error {
	if n < 0 || n > c.Remaining() {
		return &TruncatedError{Offset: c.Offset(), Need: n, Available: c.Remaining()}
	}
	return nil
}

func readUint[T constraints.Unsigned](c *Cursor, n int) (v T, e error) {
	if e = c.check(n); e != nil {
		return 0, e
	}
	for _, b := range c.b[c.pos : c.pos+n] {
		v = v<<8 | T(b)
	}
	c.pos += n
	return v, nil
}

// ReadU8 reads an 8-bit integer.
func (c *Cursor) ReadU8() (uint8, error) {
	return readUint[uint8](c, 1)
}

// ReadU16 reads a 16-bit big-endian integer.
func (c *Cursor) ReadU16() (uint16, error) {
	return readUint[uint16](c, 2)
}

// ReadU24 reads a 24-bit big-endian integer.
func (c *Cursor) ReadU24() (uint32, error) {
	return readUint[uint32](c, 3)
}

// ReadU32 reads a 32-bit big-endian integer.
func (c *Cursor) ReadU32() (uint32, error) {
	return readUint[uint32](c, 4)
}

// ReadU64 reads a 64-bit big-endian integer.
func (c *Cursor) ReadU64() (uint64, error) {
	return readUint[uint64](c, 8)
}

// ReadUint reads a big-endian integer of 1 to 8 octets.
func (c *Cursor) ReadUint(width int) (uint64, error) {
	if width < 1 || width > 8 {
		return 0, ErrUnsupportedVariant
	}
	return readUint[uint64](c, width)
}

// ReadBytes reads n octets.
// The returned slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if e := c.check(n); e != nil {
		return nil, e
	}
	b := c.b[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip discards n octets.
func (c *Cursor) Skip(n int) error {
	if e := c.check(n); e != nil {
		return e
	}
	c.pos += n
	return nil
}

// Rest consumes and returns all unread octets.
func (c *Cursor) Rest() []byte {
	b, _ := c.ReadBytes(c.Remaining())
	return b
}

// Sub consumes n octets and returns a Cursor bounded to them.
// Offsets of the sub-cursor remain absolute.
func (c *Cursor) Sub(n int) (Cursor, error) {
	start := c.Offset()
	b, e := c.ReadBytes(n)
	if e != nil {
		return Cursor{}, e
	}
	return Cursor{b: b, base: start}, nil
}
