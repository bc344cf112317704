// +build gofuzz

package compact

import (
	"github.com/parquetry/core/cursor"
)

func FuzzStructDecoder(data []byte) int {
	if _, err := DecodeStruct(cursor.New(data)); err != nil {
		return 0
	}

	return 1
}
