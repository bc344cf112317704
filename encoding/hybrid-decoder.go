package encoding

import (
	"math/bits"

	"github.com/hexbee-net/errors"

	"github.com/parquetry/core/cursor"
)

// DecodeHybridSize reads a little-endian four-byte length prefix and decodes
// that many bytes of RLE/bit-packing hybrid runs. This is the layout used by
// v1 data page levels and dictionary indices.
func DecodeHybridSize(in, out *cursor.Cursor, bitWidth int) error {
	size, err := in.ReadInt32()
	if err != nil {
		return errors.Wrap(err, "failed to read hybrid run length")
	}

	if size < 0 {
		return errors.WithFields(
			errors.WithStack(errInvalidLength),
			errors.Fields{
				"length": size,
			})
	}

	return DecodeHybrid(in, out, bitWidth, int(size))
}

// DecodeHybrid decodes length bytes of hybrid runs from in, writing the
// values to out as little-endian int32. Runs alternate between RLE repeats
// (even header) and bit-packed groups (odd header); each run carries its own
// varint header. Decoding stops once out has no room for another value.
func DecodeHybrid(in, out *cursor.Cursor, bitWidth, length int) error {
	if bitWidth < 0 || bitWidth > maxBitWidth {
		return errors.WithFields(
			errors.WithStack(ErrInvalidBitWidth),
			errors.Fields{
				"bit-width": bitWidth,
			})
	}

	end := in.Tell() + length

	for in.Tell() < end && out.Remaining() >= 4 {
		header, err := ReadUvarint(in)
		if err != nil {
			return errors.Wrap(err, "failed to read run header")
		}

		if header&1 == 1 {
			err = decodeBitPackedRun(in, out, bitWidth, int(header>>1))
		} else {
			err = decodeRLERun(in, out, bitWidth, int(header>>1))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func decodeRLERun(in, out *cursor.Cursor, bitWidth, count int) error {
	buf, err := in.ReadBytes((bitWidth + 7) / 8)
	if err != nil {
		return errors.Wrap(err, "failed to read RLE run value")
	}

	var value uint32
	for _, b := range buf {
		value = value<<8 | uint32(b)
	}

	if bits.LeadingZeros32(value) < 32-bitWidth {
		return errors.WithFields(
			errors.WithStack(errLargeRLEValue),
			errors.Fields{
				"value":     value,
				"bit-width": bitWidth,
			})
	}

	for ; count > 0 && out.Remaining() >= 4; count-- {
		if err := out.WriteInt32(int32(value)); err != nil {
			return err
		}
	}

	return nil
}

// decodeBitPackedRun unpacks groups*8 values of bitWidth bits each, packed
// least-significant-bit first across byte boundaries. A sliding window over
// the input keeps at most a few buffered bytes: bytes are pulled in lazily
// whenever fewer than bitWidth unconsumed bits remain, and fully consumed
// low bytes are discarded as the window advances.
func decodeBitPackedRun(in, out *cursor.Cursor, bitWidth, groups int) error {
	count := groups * 8
	mask := uint64(1)<<uint(bitWidth) - 1

	var acc uint64

	filled, used := 0, 0

	for i := 0; i < count; i++ {
		for filled-used < bitWidth {
			b, err := in.ReadByte()
			if err != nil {
				return errors.Wrap(err, "bit-packed run truncated")
			}

			acc |= uint64(b) << uint(filled)
			filled += 8
		}

		if out.Remaining() < 4 {
			// The trailing values of the run are padding past the
			// output capacity.
			return nil
		}

		if err := out.WriteInt32(int32((acc >> uint(used)) & mask)); err != nil {
			return err
		}

		used += bitWidth

		for used > 8 {
			acc >>= 8
			used -= 8
			filled -= 8
		}
	}

	return nil
}
