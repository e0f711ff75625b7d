// Package format holds the constants and small enums that describe the
// on-disk bucket format: the magic number, format version, and the set of
// compression codecs a value-set blob may be framed with.
package format

// Magic identifies a binstore bucket file. bucket.Open rejects any file
// whose header does not start with this value.
const Magic uint32 = 0x594e4e4a

// Version identifies the on-disk layout of a bucket file.
//
//   - Version0 is the spec-exact layout: every value-set blob is a bare LZ4
//     frame with no outer length prefix, relying on the frame's own
//     end-of-stream marker to delimit it.
//   - Version1 adds a u32 little-endian length prefix before the compressed
//     frame, which lets the blob use any CompressionType below instead of
//     being hardcoded to LZ4.
type Version uint32

const (
	Version0 Version = 0
	Version1 Version = 1
)

// CurrentVersion is the version bucket.Create writes by default.
const CurrentVersion = Version0

// HeaderSize is the fixed, serialized byte size of section.BucketHeader.
const HeaderSize = 48

// DenseRecordSize is the fixed, serialized byte size of one
// section.DenseIndexEntry: an 8-byte key plus an 8-byte offset.
const DenseRecordSize = 16

// DefaultSparseIndexStep is the number of dense-index records between
// consecutive sparse-index samples. Derived, per spec, from targeting one
// sample per 4KiB page of dense-index records: 4096 / DenseRecordSize.
const DefaultSparseIndexStep = 4096 / DenseRecordSize

// CompressionLevel is the compression level used for the default LZ4 codec.
// The reference implementation (a Rust lz4 crate with levels 0-16) uses 10;
// pierrec/lz4/v4 exposes a coarser Fast/Level1..Level9 scale, so this maps
// to its highest level, Level9, as the closest equivalent of "favor ratio
// over speed."
const CompressionLevel = 9

// CompressionType identifies the codec a version-1 value-set blob was framed
// with. Version-0 blobs are always CompressionLZ4 and do not encode this
// value on disk; it only appears in the version-1 extension.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionLZ4  CompressionType = 0x2
	CompressionZstd CompressionType = 0x3
	CompressionS2   CompressionType = 0x4
)

// PackVersion combines a Version and the CompressionType its blobs are
// framed with into the single u32 BucketHeader.Version encodes on disk.
// Version 0 always packs to a bare 0, whatever c is: its codec is implied
// LZ4 and is not stored. Version 1 packs whichever codec
// bucket.WithCompression selected at create time. This mirrors the
// reference implementation's 4-byte packed flag fields rather than growing
// the header by a dedicated compression byte.
func PackVersion(v Version, c CompressionType) uint32 {
	if v == Version0 {
		return uint32(Version0)
	}

	return uint32(v) | uint32(c)<<8
}

// UnpackVersion splits a raw BucketHeader.Version field back into its
// Version and CompressionType. A version-0 field always unpacks to
// CompressionLZ4.
func UnpackVersion(raw uint32) (Version, CompressionType) {
	v := Version(raw & 0xFF)
	if v == Version0 {
		return v, CompressionLZ4
	}

	return v, CompressionType((raw >> 8) & 0xFF)
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}
