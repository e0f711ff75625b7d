// Package sparseindex implements the in-memory index bucket.Open loads
// entirely into memory to avoid a full scan of the (potentially huge)
// dense index on every lookup.
//
// A SparseIndex holds one Sample per Step dense-index entries, plus the
// bucket's largest key if Step didn't already land on it. TryGet turns a
// key into the [lo, hi] byte range of the dense index that might contain
// it; the caller then does a bounded linear scan of that range, which by
// construction never spans more than Step+1 dense-index records.
package sparseindex

import (
	"sort"

	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/section"
)

// Sample is one entry in a SparseIndex: a key and the byte offset, within
// the dense index, of that key's DenseIndexEntry.
type Sample struct {
	Key    section.HashedKey
	Offset uint64
}

// SparseIndex is the in-memory, binary-searchable sample of a bucket's
// dense index.
type SparseIndex struct {
	Step    uint64
	Samples []Sample
}

// Build constructs a SparseIndex over keys, which must already be sorted
// ascending and deduplicated — the same order bucket.Create writes the
// dense index in. One Sample is emitted every step keys; if the last key
// isn't already covered by that stride (or there is exactly one key), an
// extra Sample for it is appended so TryGet's range never misses the tail
// of the dense index.
func Build(keys []section.HashedKey, step uint64) SparseIndex {
	si := SparseIndex{Step: step}
	if len(keys) == 0 {
		return si
	}

	lastKey := keys[len(keys)-1]
	for i := 0; i < len(keys); i += int(step) {
		si.Samples = append(si.Samples, Sample{
			Key:    keys[i],
			Offset: uint64(i) * section.DenseIndexEntrySize,
		})
	}

	needsExtra := len(keys) == 1 || si.Samples[len(si.Samples)-1].Key != lastKey
	if needsExtra {
		si.Samples = append(si.Samples, Sample{
			Key:    lastKey,
			Offset: uint64(len(keys)-1) * section.DenseIndexEntrySize,
		})
	}

	return si
}

// TryGet returns the [lo, hi] byte range, relative to BucketHeader.
// DenseIndexOffset, that a linear scan must cover to find key, and ok=true
// if key might be present. ok is false if key falls outside the sampled
// range and therefore cannot be in the bucket.
func (si SparseIndex) TryGet(key section.HashedKey) (lo, hi uint64, ok bool) {
	if len(si.Samples) < 2 {
		return 0, 0, false
	}

	i := sort.Search(len(si.Samples), func(i int) bool { return si.Samples[i].Key >= key })
	if i < len(si.Samples) && si.Samples[i].Key == key {
		return si.Samples[i].Offset, si.Samples[i].Offset, true
	}
	if i == 0 || i == len(si.Samples) {
		return 0, 0, false
	}

	return si.Samples[i-1].Offset, si.Samples[i].Offset, true
}

// Bytes serializes si as: a little-endian u64 step, a little-endian u64
// sample count, then each Sample's (key, offset) pair.
func (si SparseIndex) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, 0, 16+len(si.Samples)*16)
	b = engine.AppendUint64(b, si.Step)
	b = engine.AppendUint64(b, uint64(len(si.Samples)))
	for _, s := range si.Samples {
		b = engine.AppendUint64(b, s.Key)
		b = engine.AppendUint64(b, s.Offset)
	}

	return b
}

// Size returns the exact serialized byte size of si, without allocating.
func (si SparseIndex) Size() uint64 {
	return 16 + uint64(len(si.Samples))*16
}

// ParseSparseIndex parses a SparseIndex from data, in the format Bytes
// produces, and returns the number of bytes consumed.
func ParseSparseIndex(data []byte, engine endian.EndianEngine) (SparseIndex, uint64, error) {
	if len(data) < 16 {
		return SparseIndex{}, 0, section.ErrShortBuffer
	}

	step := engine.Uint64(data[0:8])
	count := engine.Uint64(data[8:16])
	consumed := uint64(16)

	if uint64(len(data)) < consumed+count*16 {
		return SparseIndex{}, 0, section.ErrShortBuffer
	}

	samples := make([]Sample, count)
	off := consumed
	for i := range samples {
		samples[i] = Sample{
			Key:    engine.Uint64(data[off : off+8]),
			Offset: engine.Uint64(data[off+8 : off+16]),
		}
		off += 16
	}

	return SparseIndex{Step: step, Samples: samples}, off, nil
}
