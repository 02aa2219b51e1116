package bits

import (
	"errors"
	"fmt"
)

// ErrTruncated indicates a read past the end of a stream region.
var ErrTruncated = errors.New("bits: read past end of stream")

// Cursor reads bytes sequentially from one region of an encoded stream.
//
// Reads are bounds-checked against the region end; an overrun returns
// ErrTruncated and leaves the cursor unchanged.
type Cursor struct {
	name string // Region name, for error messages
	data []byte // Whole stream
	pos  int    // Next byte to read
	end  int    // One past the last readable byte
}

// NewCursor creates a Cursor over data[start:end].
// end is clamped to len(data), so a region that runs past the buffer
// fails on the first read beyond it.
func NewCursor(name string, data []byte, start, end int) *Cursor {
	if end > len(data) {
		end = len(data)
	}
	return &Cursor{
		name: name,
		data: data,
		pos:  start,
		end:  end,
	}
}

// Pos returns the absolute offset of the next byte.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes in the region.
func (c *Cursor) Remaining() int {
	if c.pos >= c.end {
		return 0
	}
	return c.end - c.pos
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	if c.pos >= c.end {
		return 0, fmt.Errorf("%w: %s byte at offset %d, stream has %d bytes",
			ErrTruncated, c.name, c.pos, len(c.data))
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadInt8 reads one two's-complement signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}
