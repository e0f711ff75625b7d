package section

import "github.com/arloliu/binstore/endian"

// DenseIndexEntrySize is the fixed, serialized byte size of a
// DenseIndexEntry: an 8-byte key followed by an 8-byte offset.
const DenseIndexEntrySize = 16

// DenseIndexEntry maps one key to the byte offset of its value-set blob,
// relative to BucketHeader.DataOffset. The dense index holds one entry per
// key, sorted by Key, and is scanned linearly within the byte range a
// sparseindex.SparseIndex lookup brackets.
type DenseIndexEntry struct {
	Key    HashedKey
	Offset uint64
}

// Bytes serializes e into a new DenseIndexEntrySize-byte little-endian
// slice.
func (e DenseIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, DenseIndexEntrySize)
	engine.PutUint64(b[0:8], e.Key)
	engine.PutUint64(b[8:16], e.Offset)

	return b
}

// AppendTo appends e's encoding to b and returns the grown slice.
func (e DenseIndexEntry) AppendTo(b []byte, engine endian.EndianEngine) []byte {
	b = engine.AppendUint64(b, e.Key)
	b = engine.AppendUint64(b, e.Offset)

	return b
}

// ParseDenseIndexEntry parses a DenseIndexEntry from the first
// DenseIndexEntrySize bytes of data.
func ParseDenseIndexEntry(data []byte, engine endian.EndianEngine) (DenseIndexEntry, error) {
	if len(data) < DenseIndexEntrySize {
		return DenseIndexEntry{}, ErrShortBuffer
	}

	return DenseIndexEntry{
		Key:    engine.Uint64(data[0:8]),
		Offset: engine.Uint64(data[8:16]),
	}, nil
}
