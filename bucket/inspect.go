package bucket

import (
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/section"
)

// HeaderInfo is a dump-friendly snapshot of a bucket's on-disk header.
type HeaderInfo struct {
	Magic             uint32
	Version           format.Version
	CompressionType   format.CompressionType
	Timestamp         int64
	SparseIndexOffset uint64
	DenseIndexOffset  uint64
	DataOffset        uint64
	EntryCount        uint64
}

// Header returns the bucket's header fields, unpacking the combined
// version/compression word into its two parts.
func (b *Bucket) Header() HeaderInfo {
	version, compressionType := format.UnpackVersion(b.header.Version)
	if version == format.Version0 {
		compressionType = format.CompressionLZ4
	}

	return HeaderInfo{
		Magic:             b.header.Magic,
		Version:           version,
		CompressionType:   compressionType,
		Timestamp:         b.header.Timestamp,
		SparseIndexOffset: b.header.SparseIndexOffset,
		DenseIndexOffset:  b.header.DenseIndexOffset,
		DataOffset:        b.header.DataOffset,
		EntryCount:        b.header.EntryCount,
	}
}

// Entries returns every dense-index entry in the bucket, in key order.
// It exists for tooling (json-dump, audits) that needs to walk the raw
// on-disk layout rather than look up one key at a time through Get.
func (b *Bucket) Entries() ([]section.DenseIndexEntry, error) {
	return b.allEntries()
}

// ValuesAt decodes the value-set blob at offset, the same offset stored
// in a DenseIndexEntry returned by Entries.
func (b *Bucket) ValuesAt(offset uint64) ([]section.Value, error) {
	return b.readBlobAt(offset)
}
