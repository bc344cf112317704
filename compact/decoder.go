// Package compact decodes the subset of the Thrift compact protocol used by
// Parquet metadata: structs, lists, and bool/i32/i64/double/binary fields.
// It is a reader only; metadata is written elsewhere by conformant Thrift
// implementations, so the byte layout here has to match them exactly.
package compact

import (
	"encoding/binary"
	"math"

	"github.com/hexbee-net/errors"

	"github.com/parquetry/core/cursor"
	"github.com/parquetry/core/encoding"
)

const ErrUnsupportedType = errors.Error("unsupported thrift type")

const (
	typeBoolTrue  = 0x01
	typeBoolFalse = 0x02
	typeI32       = 0x05
	typeI64       = 0x06
	typeDouble    = 0x07
	typeBinary    = 0x08
	typeList      = 0x09
	typeStruct    = 0x0C
)

// DecodeStruct reads field headers until the end-of-struct byte. Each header
// carries the field-id delta in its high nibble (Parquet writes fields in
// ascending id order) and the field type in its low nibble. The running
// field id is local to each struct level.
func DecodeStruct(c *cursor.Cursor) (map[int16]Value, error) {
	fields := make(map[int16]Value)
	fieldID := int16(0)

	for {
		header, err := c.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read field header")
		}

		if header == 0 {
			return fields, nil
		}

		fieldID += int16(header >> 4)

		value, err := decodeField(c, header&0x0F)
		if err != nil {
			return nil, err
		}

		fields[fieldID] = value
	}
}

func decodeField(c *cursor.Cursor, typ byte) (Value, error) {
	switch typ {
	case typeBoolTrue:
		return boolValue(true), nil

	case typeBoolFalse:
		return boolValue(false), nil

	case typeI32, typeI64:
		u, err := encoding.ReadUvarint(c)
		if err != nil {
			return Value{}, errors.Wrap(err, "failed to read integer field")
		}

		return intValue(encoding.ZigzagDecode64(u)), nil

	case typeDouble:
		buf, err := c.ReadBytes(8)
		if err != nil {
			return Value{}, errors.Wrap(err, "failed to read double field")
		}

		return doubleValue(math.Float64frombits(binary.LittleEndian.Uint64(buf))), nil

	case typeBinary:
		return decodeBinary(c)

	case typeList:
		return decodeList(c)

	case typeStruct:
		fields, err := DecodeStruct(c)
		if err != nil {
			return Value{}, err
		}

		return structValue(fields), nil

	default:
		return Value{}, errors.WithFields(
			errors.WithStack(ErrUnsupportedType),
			errors.Fields{
				"type": typ,
			})
	}
}

func decodeBinary(c *cursor.Cursor) (Value, error) {
	n, err := encoding.ReadUvarint(c)
	if err != nil {
		return Value{}, errors.Wrap(err, "failed to read binary length")
	}

	view, err := c.ReadBytes(int(n))
	if err != nil {
		return Value{}, errors.Wrap(err, "failed to read binary data")
	}

	raw := make([]byte, len(view))
	copy(raw, view)

	return bytesValue(raw), nil
}

func decodeList(c *cursor.Cursor) (Value, error) {
	header, err := c.ReadByte()
	if err != nil {
		return Value{}, errors.Wrap(err, "failed to read list header")
	}

	elemType := header & 0x0F
	count := uint64(header >> 4)

	// a size nibble of 15 means the real count follows as a varint
	if header >= 0xF0 {
		count, err = encoding.ReadUvarint(c)
		if err != nil {
			return Value{}, errors.Wrap(err, "failed to read list size")
		}
	}

	capacity := int(count)
	if remaining := c.Remaining(); capacity > remaining {
		// every element consumes at least one byte, so a larger count
		// can only end in underrun; don't let it size the allocation
		capacity = remaining
	}

	items := make([]Value, 0, capacity)

	for i := uint64(0); i < count; i++ {
		var item Value

		switch elemType {
		case typeI32:
			u, err := encoding.ReadUvarint(c)
			if err != nil {
				return Value{}, errors.Wrap(err, "failed to read list element")
			}

			item = intValue(encoding.ZigzagDecode64(u))

		case typeBinary:
			item, err = decodeBinary(c)
			if err != nil {
				return Value{}, err
			}

		default:
			fields, err := DecodeStruct(c)
			if err != nil {
				return Value{}, err
			}

			item = structValue(fields)
		}

		items = append(items, item)
	}

	return listValue(items), nil
}
