package encoding

import (
	"encoding/binary"

	"github.com/hexbee-net/errors"

	"github.com/parquetry/core/cursor"
)

// EncodeBitPacked writes values as a single bit-packed run: the varint
// header ((ceil(n/8)) << 1) | 1 followed by the values packed
// least-significant-bit first, zero-padded to a full group of eight.
// There is no RLE encoder; repeated values are simply packed.
func EncodeBitPacked(values []int32, bitWidth int, out *cursor.Cursor) error {
	if bitWidth < 1 || bitWidth > maxBitWidth {
		return errors.WithFields(
			errors.WithStack(ErrInvalidBitWidth),
			errors.Fields{
				"bit-width": bitWidth,
			})
	}

	groups := (len(values) + 7) / 8

	var hdr [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(hdr[:], uint64(groups)<<1|1)
	if _, err := out.Write(hdr[:n]); err != nil {
		return errors.Wrap(err, "failed to write run header")
	}

	mask := uint64(1)<<uint(bitWidth) - 1

	var acc uint64

	nbits := 0

	for i := 0; i < groups*8; i++ {
		var v uint64

		if i < len(values) {
			v = uint64(uint32(values[i]))
			if v > mask {
				return errors.WithFields(
					errors.WithStack(errOutOfRange),
					errors.Fields{
						"value":     values[i],
						"bit-width": bitWidth,
					})
			}
		}

		acc |= v << uint(nbits)
		nbits += bitWidth

		for nbits >= 8 {
			if err := out.WriteByte(byte(acc)); err != nil {
				return errors.Wrap(err, "failed to write packed byte")
			}

			acc >>= 8
			nbits -= 8
		}
	}

	return nil
}
