// Package section holds the fixed-size, serialized record types that make
// up a bucket file: the header, dense-index entries, and the 128-bit
// values stored in each key's value set.
package section

import "github.com/arloliu/binstore/endian"

// HashedKey is the 64-bit hash binstore keys are looked up by. Bucket,
// sparseindex.SparseIndex, and the dense index all order entries by this
// value.
type HashedKey = uint64

// ValueSize is the fixed, serialized byte size of a Value.
const ValueSize = 16

// Value is a 128-bit value associated with a HashedKey. Go has no native
// 128-bit integer, so Value splits it into two uint64 halves; Hi holds the
// more-significant 64 bits.
//
// A bucket never stores a single Value per key — it stores a set of them,
// sorted and deduplicated by Less, mirroring the reference implementation's
// BTreeSet<Value>.
type Value struct {
	Hi uint64
	Lo uint64
}

// NewValue builds a Value from its high and low 64-bit halves.
func NewValue(hi, lo uint64) Value {
	return Value{Hi: hi, Lo: lo}
}

// Less reports whether v orders before other, comparing Hi first and Lo on
// ties. This is the total order a value set is sorted and deduplicated by.
func (v Value) Less(other Value) bool {
	if v.Hi != other.Hi {
		return v.Hi < other.Hi
	}

	return v.Lo < other.Lo
}

// Equal reports whether v and other represent the same 128-bit value.
func (v Value) Equal(other Value) bool {
	return v.Hi == other.Hi && v.Lo == other.Lo
}

// Bytes serializes v into a new 16-byte little-endian slice, low word
// first.
func (v Value) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, ValueSize)
	engine.PutUint64(b[0:8], v.Lo)
	engine.PutUint64(b[8:16], v.Hi)

	return b
}

// AppendTo appends v's 16-byte encoding to b and returns the grown slice.
func (v Value) AppendTo(b []byte, engine endian.EndianEngine) []byte {
	b = engine.AppendUint64(b, v.Lo)
	b = engine.AppendUint64(b, v.Hi)

	return b
}

// ParseValue parses a Value from the first 16 bytes of data.
func ParseValue(data []byte, engine endian.EndianEngine) (Value, error) {
	if len(data) < ValueSize {
		return Value{}, ErrShortBuffer
	}

	return Value{
		Lo: engine.Uint64(data[0:8]),
		Hi: engine.Uint64(data[8:16]),
	}, nil
}
