package encoding

import (
	"math/bits"
)

// BitWidthForMax returns the smallest number of bits that can hold every
// value up to max. Used to size the bit-packed runs of dictionary indices
// and repetition/definition levels.
func BitWidthForMax(max uint64) int {
	return bits.Len64(max)
}
