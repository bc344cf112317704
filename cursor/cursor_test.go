package cursor

import (
	"io"
	"testing"

	"github.com/hexbee-net/errors"
	"github.com/stretchr/testify/require"
	"github.com/tj/assert"
)

func TestCursor_ReadByte(t *testing.T) {
	t.Parallel()

	c := New([]byte{0x01, 0x02})

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, 1, c.Tell())

	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), b)

	_, err = c.ReadByte()
	assert.EqualError(t, errors.Cause(err), ErrBufferUnderrun.Error())
	assert.Equal(t, 2, c.Tell())
}

func TestCursor_ReadInt32(t *testing.T) {
	t.Parallel()

	c := New([]byte{0x78, 0x56, 0x34, 0x12})

	v, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(0x12345678), v)
	assert.Equal(t, 4, c.Tell())
}

func TestCursor_ReadInt32_Negative(t *testing.T) {
	t.Parallel()

	c := New([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	v, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

func TestCursor_ReadInt32_ShortStrict(t *testing.T) {
	t.Parallel()

	c := New([]byte{0x01, 0x02, 0x03})

	_, err := c.ReadInt32()
	assert.EqualError(t, errors.Cause(err), ErrBufferUnderrun.Error())
	assert.Equal(t, 0, c.Tell())
}

func TestCursor_ReadInt32_ShortLenient(t *testing.T) {
	t.Parallel()

	c := NewLenient([]byte{0x01, 0x02, 0x03})

	v, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
	assert.Equal(t, 0, c.Tell())
}

func TestCursor_ReadBytes(t *testing.T) {
	t.Parallel()

	c := New([]byte{0x01, 0x02, 0x03})

	b, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 2, c.Tell())

	_, err = c.ReadBytes(2)
	assert.EqualError(t, errors.Cause(err), ErrBufferUnderrun.Error())
}

func TestCursor_WriteByte(t *testing.T) {
	t.Parallel()

	c := New(make([]byte, 2))

	require.NoError(t, c.WriteByte(0xAA))
	require.NoError(t, c.WriteByte(0xBB))
	assert.Equal(t, []byte{0xAA, 0xBB}, c.Consumed())

	err := c.WriteByte(0xCC)
	assert.EqualError(t, errors.Cause(err), ErrBufferOverrun.Error())
}

func TestCursor_WriteByte_LenientDrop(t *testing.T) {
	t.Parallel()

	c := NewLenient(make([]byte, 1))

	require.NoError(t, c.WriteByte(0xAA))
	require.NoError(t, c.WriteByte(0xBB))

	assert.Equal(t, 1, c.Tell())
	assert.Equal(t, []byte{0xAA}, c.Consumed())
}

func TestCursor_WriteInt32(t *testing.T) {
	t.Parallel()

	c := New(make([]byte, 4))

	require.NoError(t, c.WriteInt32(0x12345678))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, c.Consumed())
}

func TestCursor_WriteInt32_LenientDrop(t *testing.T) {
	t.Parallel()

	c := NewLenient(make([]byte, 2))

	require.NoError(t, c.WriteInt32(0x12345678))
	assert.Equal(t, 0, c.Tell())
}

func TestCursor_Seek(t *testing.T) {
	t.Parallel()

	c := New([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	pos, err := c.Seek(4, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	pos, err = c.Seek(-2, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	pos, err = c.Seek(-3, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)
}

func TestCursor_Seek_ClampsPastEnd(t *testing.T) {
	t.Parallel()

	c := New([]byte{0, 1, 2, 3})

	pos, err := c.Seek(100, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)
}

func TestCursor_Seek_NegativeOffset(t *testing.T) {
	t.Parallel()

	c := New([]byte{0, 1, 2, 3})

	_, err := c.Seek(-1, io.SeekStart)
	assert.EqualError(t, errors.Cause(err), ErrNegativeOffset.Error())
	assert.Equal(t, 0, c.Tell())
}

func TestCursor_Seek_InvalidWhence(t *testing.T) {
	t.Parallel()

	c := New([]byte{0, 1})

	_, err := c.Seek(0, 42)
	assert.EqualError(t, errors.Cause(err), ErrInvalidWhence.Error())
}

func TestCursor_Read(t *testing.T) {
	t.Parallel()

	c := New([]byte{1, 2, 3})
	buf := make([]byte, 2)

	n, err := c.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2}, buf)

	n, err = c.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = c.Read(buf)
	assert.Equal(t, io.EOF, err)
}
