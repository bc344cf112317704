package encoding

import (
	"io"

	"github.com/hexbee-net/errors"
)

// ReadUvarint decodes an unsigned LEB128 varint, seven bits per byte, low
// group first. A varint longer than ten bytes cannot encode a 64-bit value
// and is rejected instead of being accumulated silently.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	var v uint64

	shift := uint(0)

	for i := 0; i < maxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "failed to read varint byte")
		}

		v |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return v, nil
		}

		shift += 7
	}

	return 0, errors.WithStack(ErrMalformedVarint)
}

func ZigzagDecode32(v uint64) int32 {
	u := uint32(v)

	return int32(u>>1) ^ -int32(u&1)
}

func ZigzagDecode64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

func ZigzagEncode32(v int32) uint64 {
	return uint64(uint32(v<<1) ^ uint32(v>>31))
}

func ZigzagEncode64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}
