package encoding

import (
	"github.com/hexbee-net/errors"

	"github.com/parquetry/core/cursor"
)

// DecodeLevels decodes the repetition or definition levels of one page:
// a length-prefixed hybrid run whose bit width is derived from the maximum
// level. Returns the levels and the number of entries equal to maxLevel
// (counting not-nulls is only meaningful for definition levels).
//
// A maximum level of zero means the column needs no levels at all; nothing
// is consumed from the page in that case.
func DecodeLevels(in *cursor.Cursor, count int, maxLevel uint16) ([]uint16, int, error) {
	levels := make([]uint16, count)

	if maxLevel == 0 {
		return levels, count, nil
	}

	out := cursor.New(make([]byte, count*4))

	if err := DecodeHybridSize(in, out, BitWidthForMax(uint64(maxLevel))); err != nil {
		return nil, 0, err
	}

	decoded := cursor.New(out.Consumed())
	notNull := 0

	for i := range levels {
		v, err := decoded.ReadInt32()
		if err != nil {
			return nil, 0, errors.Wrap(err, "page is missing level data")
		}

		if v < 0 || uint16(v) > maxLevel {
			return nil, 0, errors.WithFields(
				errors.WithStack(errOutOfRange),
				errors.Fields{
					"level":     v,
					"max-level": maxLevel,
				})
		}

		levels[i] = uint16(v)

		if levels[i] == maxLevel {
			notNull++
		}
	}

	return levels, notNull, nil
}
