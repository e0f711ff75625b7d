// Package codec turns a key's sorted value set into the framed,
// compressed byte blob a bucket file stores it as, and back.
package codec

import (
	"encoding/binary"

	"github.com/arloliu/binstore/section"
)

// EncodeValueSet serializes a sorted, deduplicated slice of values as a
// little-endian u64 count followed by each value's 16-byte encoding. This
// is the payload WriteBlob hands to the compressor; ReadBlob reverses it
// with DecodeValueSet.
func EncodeValueSet(values []section.Value) []byte {
	b := make([]byte, 8, 8+len(values)*section.ValueSize)
	binary.LittleEndian.PutUint64(b, uint64(len(values)))
	for _, v := range values {
		b = v.AppendTo(b, binary.LittleEndian)
	}

	return b
}

// DecodeValueSet parses the format EncodeValueSet produces.
func DecodeValueSet(data []byte) ([]section.Value, error) {
	if len(data) < 8 {
		return nil, section.ErrShortBuffer
	}

	count := binary.LittleEndian.Uint64(data[0:8])
	data = data[8:]
	if uint64(len(data)) < count*section.ValueSize {
		return nil, section.ErrShortBuffer
	}

	values := make([]section.Value, count)
	for i := range values {
		v, err := section.ParseValue(data[i*section.ValueSize:], binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}
