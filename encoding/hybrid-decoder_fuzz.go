// +build gofuzz

package encoding

import (
	"github.com/parquetry/core/cursor"
)

func FuzzHybridDecoder(data []byte) int {
	out := cursor.New(make([]byte, 4096))

	if err := DecodeHybridSize(cursor.New(data), out, 5); err != nil {
		return 0
	}

	return 1
}
