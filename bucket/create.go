package bucket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arloliu/binstore/codec"
	"github.com/arloliu/binstore/compress"
	"github.com/arloliu/binstore/endian"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/internal/logger"
	"github.com/arloliu/binstore/internal/options"
	"github.com/arloliu/binstore/section"
	"github.com/arloliu/binstore/sparseindex"
)

// Create writes a new bucket file at path from entries, a map of key to
// its (not necessarily sorted or deduplicated) value set.
//
// Create makes a single pass over the file with one writer: it reserves
// space for the header and dense index, streams the data section, then
// seeks back to backpatch the dense index and finally the header. This
// collapses the reference implementation's create, which used the same
// approach, and its merge, which opened two separate writers over the
// output path and is the source of the race the reference implementation's
// own notes flag — Merge in this package reuses this single-writer
// sequence instead.
func Create(path string, entries map[section.HashedKey][]section.Value, opts ...CreateOption) error {
	cfg := defaultCreateConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	cd, err := compress.GetCodec(cfg.compressionType)
	if err != nil {
		return err
	}

	keys := make([]section.HashedKey, 0, len(entries))
	for k, values := range entries {
		if len(values) == 0 {
			return fmt.Errorf("%w: key %d", ErrEmptyValueSet, k)
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	engine := endian.GetLittleEndianEngine()

	header := section.NewBucketHeader(format.PackVersion(cfg.version, cfg.compressionType))
	header.EntryCount = uint64(len(keys))
	if _, err := w.Write(header.Bytes(engine)); err != nil {
		return err
	}

	header.SparseIndexOffset = section.HeaderSize
	si := sparseindex.Build(keys, cfg.sparseStep)
	if _, err := w.Write(si.Bytes(engine)); err != nil {
		return err
	}

	header.DenseIndexOffset = header.SparseIndexOffset + si.Size()
	diSize := int64(len(keys)) * section.DenseIndexEntrySize
	header.DataOffset = header.DenseIndexOffset + uint64(diSize)

	if err := w.Flush(); err != nil {
		return err
	}
	if _, err := f.Seek(int64(header.DataOffset), io.SeekStart); err != nil {
		return err
	}

	cw := &countingWriter{w: w}
	offsets := make([]uint64, len(keys))
	for i, key := range keys {
		values := sortedDedupedValues(entries[key])

		offsets[i] = uint64(cw.n)
		if err := codec.WriteBlob(cw, cfg.version, cd, values); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	if _, err := f.Seek(int64(header.DenseIndexOffset), io.SeekStart); err != nil {
		return err
	}
	for i, key := range keys {
		entry := section.DenseIndexEntry{Key: key, Offset: offsets[i]}
		if _, err := w.Write(entry.Bytes(engine)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.Write(header.Bytes(engine)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Debug("created bucket %s: %d entries, version=%d", path, len(keys), cfg.version)

	return nil
}

// countingWriter tracks the total bytes written through it, so Create can
// record each blob's starting offset without a Seek/flush round trip per
// key.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// sortedDedupedValues returns values sorted by Value.Less with adjacent
// duplicates removed, mirroring the reference implementation storing each
// key's values as a BTreeSet<Value>.
func sortedDedupedValues(values []section.Value) []section.Value {
	out := make([]section.Value, len(values))
	copy(out, values)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	if len(out) == 0 {
		return out
	}

	deduped := out[:1]
	for _, v := range out[1:] {
		if !v.Equal(deduped[len(deduped)-1]) {
			deduped = append(deduped, v)
		}
	}

	return deduped
}
