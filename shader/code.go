package shader

import (
	"encoding/binary"
	"os"

	"github.com/cockroachdb/errors"
)

// LoadCode reads a SPIR-V file as little-endian 32-bit words. A partial trailing word is dropped.
func LoadCode(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file %s", path)
	}

	code := make([]uint32, len(data)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return code, nil
}
