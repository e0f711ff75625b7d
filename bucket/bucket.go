// Package bucket implements the immutable, on-disk bucket file: a header,
// an in-memory sparse index, an on-disk dense index, and a data section of
// compressed per-key value-set blobs.
//
// Opening a bucket is a two-step operation internally — read and validate
// the header, then load the sparse index — but Open collapses both into a
// single call: there is no exported type for an unchecked, just-opened
// file the way the reference implementation's Bucket<Initial> phantom type
// models it. A *Bucket returned by Open has always passed header
// validation.
package bucket

import (
	"os"
	"time"

	"github.com/arloliu/binstore/compress"
	"github.com/arloliu/binstore/format"
	"github.com/arloliu/binstore/section"
	"github.com/arloliu/binstore/sparseindex"
)

// Bucket is a read handle on an on-disk bucket file. A *Bucket is safe for
// concurrent use by multiple goroutines: Get reads the data section with
// file.ReadAt through an io.SectionReader, never seeking the shared file
// descriptor, so concurrent lookups never race on its read offset.
type Bucket struct {
	header section.BucketHeader
	sparse sparseindex.SparseIndex
	codec  compress.Codec
	file   *os.File
	path   string
}

// Path returns the filesystem path the bucket was opened from.
func (b *Bucket) Path() string {
	return b.path
}

// EntryCount returns the number of distinct keys in the bucket.
func (b *Bucket) EntryCount() uint64 {
	return b.header.EntryCount
}

// CreatedAt returns when the bucket was created.
func (b *Bucket) CreatedAt() time.Time {
	return b.header.CreatedAt()
}

// Version reports the on-disk layout version the bucket was written with.
func (b *Bucket) Version() format.Version {
	v, _ := format.UnpackVersion(b.header.Version)
	return v
}

// Close releases the bucket's open file descriptor. A Bucket must not be
// used after Close.
func (b *Bucket) Close() error {
	return b.file.Close()
}
