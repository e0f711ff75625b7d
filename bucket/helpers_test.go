package bucket

import (
	"os"

	"github.com/arloliu/binstore/endian"
)

func writeRawFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func leEngine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}
