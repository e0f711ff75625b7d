package bucket

import (
	"io"

	"github.com/arloliu/binstore/codec"
	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/section"
)

// Merge reads every key from path1 and path2 and writes their union to
// outputPath: a key present in only one input keeps its value set; a key
// present in both gets the sorted, deduplicated union of both value sets.
//
// The reference implementation streamed this two-pointer merge straight
// into the output file through two separate writers sharing one path — the
// source of the open-writer race its own notes flag. Merge here reads both
// inputs into one map and hands it to Create, which backpatches the output
// through a single writer/file, the same way Create always has. This adds
// one allocation (the merged map) in exchange for removing the race
// entirely, rather than threading a second Seek-coordinated cursor through
// a hand-rolled streaming writer.
func Merge(path1, path2, outputPath string, opts ...CreateOption) error {
	b1, err := Open(path1)
	if err != nil {
		return err
	}
	defer b1.Close()

	b2, err := Open(path2)
	if err != nil {
		return err
	}
	defer b2.Close()

	entries1, err := b1.allEntries()
	if err != nil {
		return err
	}
	entries2, err := b2.allEntries()
	if err != nil {
		return err
	}

	merged := make(map[section.HashedKey][]section.Value, len(entries1)+len(entries2))

	i, j := 0, 0
	for i < len(entries1) && j < len(entries2) {
		switch {
		case entries1[i].Key < entries2[j].Key:
			values, err := b1.readBlobAt(entries1[i].Offset)
			if err != nil {
				return err
			}
			merged[entries1[i].Key] = values
			i++
		case entries1[i].Key > entries2[j].Key:
			values, err := b2.readBlobAt(entries2[j].Offset)
			if err != nil {
				return err
			}
			merged[entries2[j].Key] = values
			j++
		default:
			v1, err := b1.readBlobAt(entries1[i].Offset)
			if err != nil {
				return err
			}
			v2, err := b2.readBlobAt(entries2[j].Offset)
			if err != nil {
				return err
			}
			merged[entries1[i].Key] = append(v1, v2...)
			i++
			j++
		}
	}
	for ; i < len(entries1); i++ {
		values, err := b1.readBlobAt(entries1[i].Offset)
		if err != nil {
			return err
		}
		merged[entries1[i].Key] = values
	}
	for ; j < len(entries2); j++ {
		values, err := b2.readBlobAt(entries2[j].Offset)
		if err != nil {
			return err
		}
		merged[entries2[j].Key] = values
	}

	return Create(outputPath, merged, opts...)
}

// allEntries reads the entire dense index into memory, in key order.
func (b *Bucket) allEntries() ([]section.DenseIndexEntry, error) {
	size := b.header.DataOffset - b.header.DenseIndexOffset
	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(b.file, int64(b.header.DenseIndexOffset), int64(size)), buf); err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	entries := make([]section.DenseIndexEntry, size/section.DenseIndexEntrySize)
	for i := range entries {
		entry, err := section.ParseDenseIndexEntry(buf[i*section.DenseIndexEntrySize:], engine)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}

// readBlobAt decodes the value-set blob at offset (relative to
// header.DataOffset).
func (b *Bucket) readBlobAt(offset uint64) ([]section.Value, error) {
	version, _ := format.UnpackVersion(b.header.Version)
	r := io.NewSectionReader(b.file, int64(b.header.DataOffset)+int64(offset), maxBlobSpan)

	return codec.ReadBlob(r, version, b.codec)
}
