package encoding

import (
	"testing"

	"github.com/hexbee-net/errors"
	"github.com/stretchr/testify/require"
	"github.com/tj/assert"

	"github.com/parquetry/core/cursor"
)

func TestEncodeBitPacked(t *testing.T) {
	t.Parallel()

	out := cursor.New(make([]byte, 8))

	require.NoError(t, EncodeBitPacked([]int32{0, 1, 2, 3, 4, 5, 6, 7}, 3, out))

	// header ((8/8) << 1) | 1 = 3, then the packed group
	assert.Equal(t, []byte{3, 0b10001000, 0b11000110, 0b11111010}, out.Consumed())
}

func TestEncodeBitPacked_PadsLastGroup(t *testing.T) {
	t.Parallel()

	values := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9}

	enc := cursor.New(make([]byte, 16))
	require.NoError(t, EncodeBitPacked(values, 5, enc))

	// header ((16/8) << 1) | 1 = 5, then two groups of five bytes
	assert.Equal(t, 11, enc.Tell())
	assert.Equal(t, byte(5), enc.Consumed()[0])

	out := cursor.New(make([]byte, 16*4))
	require.NoError(t, DecodeHybrid(cursor.New(enc.Consumed()), out, 5, enc.Tell()))

	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0, 0, 0, 0, 0, 0}, readInt32s(t, out))
}

func TestEncodeBitPacked_ValueOutOfRange(t *testing.T) {
	t.Parallel()

	out := cursor.New(make([]byte, 8))

	err := EncodeBitPacked([]int32{8}, 3, out)
	assert.EqualError(t, errors.Cause(err), errOutOfRange.Error())
}

func TestEncodeBitPacked_InvalidBitWidth(t *testing.T) {
	t.Parallel()

	out := cursor.New(make([]byte, 8))

	err := EncodeBitPacked([]int32{1}, 0, out)
	assert.EqualError(t, errors.Cause(err), ErrInvalidBitWidth.Error())
}
