package bucket

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/binstore/codec"
	"github.com/arloliu/binstore/compress"
	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/internal/logger"
	"github.com/arloliu/binstore/section"
	"github.com/arloliu/binstore/sparseindex"
)

// Open opens the bucket file at path, validates its header, and loads its
// sparse index into memory. The dense index and data sections are left on
// disk and read on demand by Get.
func Open(path string) (*Bucket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	headerBuf := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, section.HeaderSize), headerBuf); err != nil {
		f.Close()
		return nil, err
	}

	header, err := section.ParseBucketHeader(headerBuf, endian.GetLittleEndianEngine())
	if err != nil {
		f.Close()
		return nil, err
	}
	if header.Magic != format.Magic {
		f.Close()
		return nil, ErrBadMagic
	}

	version, compressionType := format.UnpackVersion(header.Version)
	if version != format.Version0 && version != format.Version1 {
		f.Close()
		return nil, ErrBadVersion
	}
	if version == format.Version0 {
		compressionType = format.CompressionLZ4
	}

	cd, err := compress.GetCodec(compressionType)
	if err != nil {
		f.Close()
		return nil, err
	}

	siSize := header.DenseIndexOffset - header.SparseIndexOffset
	siBuf := make([]byte, siSize)
	if _, err := io.ReadFull(io.NewSectionReader(f, int64(header.SparseIndexOffset), int64(siSize)), siBuf); err != nil {
		f.Close()
		return nil, err
	}

	si, _, err := sparseindex.ParseSparseIndex(siBuf, endian.GetLittleEndianEngine())
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Debug("opened bucket %s: %d entries, version=%d", path, header.EntryCount, version)

	return &Bucket{header: header, sparse: si, codec: cd, file: f, path: path}, nil
}

// Get returns the sorted, deduplicated set of values stored under key, or
// ErrKeyNotFound if key has no entry in the bucket.
func (b *Bucket) Get(key section.HashedKey) ([]section.Value, error) {
	lo, hi, ok := b.sparse.TryGet(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	offset, found, err := b.locate(key, lo, hi)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrKeyNotFound
	}

	version, _ := format.UnpackVersion(b.header.Version)
	r := io.NewSectionReader(b.file, int64(b.header.DataOffset)+int64(offset), maxBlobSpan)

	values, err := codec.ReadBlob(r, version, b.codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return values, nil
}

// maxBlobSpan bounds the io.SectionReader handed to a version-0 decoder,
// which must be given a reader that can run past one blob's end (the LZ4
// frame's own marker is what actually stops it, not this bound).
const maxBlobSpan = 1 << 40

// locate does a bounded linear scan of the dense index between [lo, hi]
// (byte offsets relative to header.DenseIndexOffset) looking for key. The
// range sparseindex.TryGet returns never spans more than Step+1 records.
func (b *Bucket) locate(key section.HashedKey, lo, hi uint64) (offset uint64, found bool, err error) {
	span := hi - lo + section.DenseIndexEntrySize
	buf := make([]byte, span)
	if _, err := io.ReadFull(io.NewSectionReader(b.file, int64(b.header.DenseIndexOffset+lo), int64(span)), buf); err != nil {
		return 0, false, err
	}

	engine := endian.GetLittleEndianEngine()
	for off := uint64(0); off+section.DenseIndexEntrySize <= uint64(len(buf)); off += section.DenseIndexEntrySize {
		entry, err := section.ParseDenseIndexEntry(buf[off:], engine)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if entry.Key == key {
			return entry.Offset, true, nil
		}
	}

	return 0, false, nil
}
