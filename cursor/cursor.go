package cursor

import (
	"io"

	"github.com/hexbee-net/errors"
)

const (
	ErrBufferUnderrun = errors.Error("buffer underrun")
	ErrBufferOverrun  = errors.Error("buffer overrun")
	ErrInvalidWhence  = errors.Error("invalid whence")
	ErrNegativeOffset = errors.Error("negative offset")
)

// Cursor is a bounds-tracked position over a caller-owned byte span. The
// same type serves both directions: reads advance the position over encoded
// input, writes advance it over decoded output, and Consumed returns
// whatever has been produced so far.
//
// A strict cursor fails every out-of-bounds access explicitly. A lenient
// cursor keeps the legacy short-read/overflow behavior of the original
// reader: ReadInt32 with fewer than four bytes left returns zero without
// advancing, and writes at or past the end are dropped silently.
type Cursor struct {
	data    []byte
	loc     int
	lenient bool
}

func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

func NewLenient(data []byte) *Cursor {
	return &Cursor{data: data, lenient: true}
}

func (c *Cursor) Len() int {
	return len(c.data)
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.loc
}

func (c *Cursor) Tell() int {
	return c.loc
}

// Consumed returns the span from the start of the buffer to the current
// position. In write mode this is the assembled output.
func (c *Cursor) Consumed() []byte {
	return c.data[:c.loc]
}

func (c *Cursor) ReadByte() (byte, error) {
	if c.loc >= len(c.data) {
		return 0, errors.WithFields(
			errors.WithStack(ErrBufferUnderrun),
			errors.Fields{
				"loc": c.loc,
				"len": len(c.data),
			})
	}

	b := c.data[c.loc]
	c.loc++

	return b, nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	if c.loc+4 > len(c.data) {
		if c.lenient {
			return 0, nil
		}

		return 0, errors.WithFields(
			errors.WithStack(ErrBufferUnderrun),
			errors.Fields{
				"loc":    c.loc,
				"len":    len(c.data),
				"needed": 4,
			})
	}

	v := int32(c.data[c.loc]) |
		int32(c.data[c.loc+1])<<8 |
		int32(c.data[c.loc+2])<<16 |
		int32(c.data[c.loc+3])<<24
	c.loc += 4

	return v, nil
}

// ReadBytes returns the next n bytes as a sub-slice of the underlying
// buffer, without copying. The slice is only valid for the buffer lifetime.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.loc+n > len(c.data) {
		return nil, errors.WithFields(
			errors.WithStack(ErrBufferUnderrun),
			errors.Fields{
				"loc":    c.loc,
				"len":    len(c.data),
				"needed": n,
			})
	}

	b := c.data[c.loc : c.loc+n]
	c.loc += n

	return b, nil
}

func (c *Cursor) Read(p []byte) (int, error) {
	if c.loc >= len(c.data) {
		return 0, io.EOF
	}

	n := copy(p, c.data[c.loc:])
	c.loc += n

	return n, nil
}

func (c *Cursor) WriteByte(b byte) error {
	if c.loc >= len(c.data) {
		if c.lenient {
			return nil
		}

		return errors.WithFields(
			errors.WithStack(ErrBufferOverrun),
			errors.Fields{
				"loc": c.loc,
				"len": len(c.data),
			})
	}

	c.data[c.loc] = b
	c.loc++

	return nil
}

func (c *Cursor) WriteInt32(v int32) error {
	if c.loc+4 > len(c.data) {
		if c.lenient {
			return nil
		}

		return errors.WithFields(
			errors.WithStack(ErrBufferOverrun),
			errors.Fields{
				"loc":    c.loc,
				"len":    len(c.data),
				"needed": 4,
			})
	}

	c.data[c.loc] = byte(v)
	c.data[c.loc+1] = byte(v >> 8)
	c.data[c.loc+2] = byte(v >> 16)
	c.data[c.loc+3] = byte(v >> 24)
	c.loc += 4

	return nil
}

func (c *Cursor) Write(p []byte) (int, error) {
	n := copy(c.data[c.loc:], p)
	c.loc += n

	if n != len(p) && !c.lenient {
		return n, errors.WithFields(
			errors.WithStack(ErrBufferOverrun),
			errors.Fields{
				"loc":    c.loc,
				"len":    len(c.data),
				"needed": len(p) - n,
			})
	}

	return n, nil
}

// Seek repositions the cursor. Positions past the end of the buffer are
// clamped to the buffer length; negative results are rejected.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var loc int64

	switch whence {
	case io.SeekStart:
		loc = offset
	case io.SeekCurrent:
		loc = int64(c.loc) + offset
	case io.SeekEnd:
		loc = int64(len(c.data)) + offset
	default:
		return int64(c.loc), errors.WithFields(
			errors.WithStack(ErrInvalidWhence),
			errors.Fields{
				"whence": whence,
			})
	}

	if loc < 0 {
		return int64(c.loc), errors.WithFields(
			errors.WithStack(ErrNegativeOffset),
			errors.Fields{
				"offset": offset,
				"whence": whence,
			})
	}

	if loc > int64(len(c.data)) {
		loc = int64(len(c.data))
	}

	c.loc = int(loc)

	return loc, nil
}
