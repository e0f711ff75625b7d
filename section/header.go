package section

import (
	"time"

	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/format"
)

// HeaderSize is the fixed, serialized byte size of BucketHeader.
const HeaderSize = format.HeaderSize

// BucketHeader is the 48-byte fixed record at the start of every bucket
// file. bucket.Open reads and validates it before trusting anything else in
// the file; bucket.Create writes a placeholder whose offsets are still zero,
// then comes back and backpatches it once the offsets are known.
type BucketHeader struct {
	// Magic must equal format.Magic for the file to be recognized as a
	// binstore bucket.
	Magic uint32
	// Version is the on-disk layout version; see format.Version.
	Version uint32
	// Timestamp is the Unix time, in seconds, the bucket was created.
	Timestamp int64
	// SparseIndexOffset is the byte offset of the sparse index section.
	SparseIndexOffset uint64
	// DenseIndexOffset is the byte offset of the dense index section.
	DenseIndexOffset uint64
	// DataOffset is the byte offset of the data section, and the base
	// every dense-index entry's offset is relative to.
	DataOffset uint64
	// EntryCount is the number of distinct keys in the bucket.
	EntryCount uint64
}

// NewBucketHeader returns a header stamped with the current time and the
// given packed version (see format.PackVersion), with all offsets and the
// entry count left at zero for the writer to backpatch.
func NewBucketHeader(packedVersion uint32) BucketHeader {
	return BucketHeader{
		Magic:     format.Magic,
		Version:   packedVersion,
		Timestamp: time.Now().Unix(),
	}
}

// Bytes serializes h into a new HeaderSize-byte little-endian slice.
func (h BucketHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	engine.PutUint32(b[0:4], h.Magic)
	engine.PutUint32(b[4:8], h.Version)
	engine.PutUint64(b[8:16], uint64(h.Timestamp))
	engine.PutUint64(b[16:24], h.SparseIndexOffset)
	engine.PutUint64(b[24:32], h.DenseIndexOffset)
	engine.PutUint64(b[32:40], h.DataOffset)
	engine.PutUint64(b[40:48], h.EntryCount)

	return b
}

// ParseBucketHeader parses a BucketHeader from the first HeaderSize bytes
// of data. It does not validate Magic or Version; callers check those
// themselves so they can return a specific sentinel error.
func ParseBucketHeader(data []byte, engine endian.EndianEngine) (BucketHeader, error) {
	if len(data) < HeaderSize {
		return BucketHeader{}, ErrShortBuffer
	}

	return BucketHeader{
		Magic:             engine.Uint32(data[0:4]),
		Version:           engine.Uint32(data[4:8]),
		Timestamp:         int64(engine.Uint64(data[8:16])),
		SparseIndexOffset: engine.Uint64(data[16:24]),
		DenseIndexOffset:  engine.Uint64(data[24:32]),
		DataOffset:        engine.Uint64(data[32:40]),
		EntryCount:        engine.Uint64(data[40:48]),
	}, nil
}

// CreatedAt returns Timestamp as a time.Time in the local zone, mirroring
// the reference implementation's use of the local clock when stamping a
// new bucket.
func (h BucketHeader) CreatedAt() time.Time {
	return time.Unix(h.Timestamp, 0)
}
