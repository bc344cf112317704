package encoding

import (
	"github.com/hexbee-net/errors"
)

const (
	ErrMalformedVarint = errors.Error("malformed varint")
	ErrInvalidBitWidth = errors.Error("invalid bit-width")

	errInvalidLength = errors.Error("invalid length prefix")
	errOutOfRange    = errors.Error("out of range")
	errLargeRLEValue = errors.Error("RLE run value is too large")
)

const (
	maxBitWidth  = 32
	maxVarintLen = 10
)
