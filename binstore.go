// Package binstore provides a high-performance, immutable on-disk format
// for mapping 64-bit hashed keys to sets of 128-bit values.
//
// A bucket file is built once, read many times: Create writes a complete,
// self-contained file in a single pass, and Open returns a handle that can
// answer concurrent Get lookups without ever rewriting the file. Updating a
// bucket means producing a new one, via Merge (union two buckets) or
// Delete (remove values from one); there is no in-place mutation.
//
// # Basic usage
//
//	import "github.com/arloliu/binstore"
//
//	entries := map[binstore.HashedKey][]binstore.Value{
//	    binstore.HashKey("user:42"): {binstore.NewValue(0, 1), binstore.NewValue(0, 2)},
//	}
//	if err := binstore.Create("users.bin", entries); err != nil {
//	    // ...
//	}
//
//	b, err := binstore.Open("users.bin")
//	if err != nil {
//	    // ...
//	}
//	defer b.Close()
//
//	values, err := b.Get(binstore.HashKey("user:42"))
//
// # Package structure
//
// This package is a thin convenience facade over bucket, the package that
// actually implements the on-disk format. For merge/delete pipelines or a
// date-indexed collection of buckets, use the bucket and db packages
// directly.
package binstore

import (
	"github.com/arloliu/binstore/bucket"
	"github.com/arloliu/binstore/internal/hash"
	"github.com/arloliu/binstore/section"
)

// HashedKey is the 64-bit hash binstore keys are looked up by.
type HashedKey = section.HashedKey

// Value is a 128-bit value stored in a key's value set.
type Value = section.Value

// NewValue builds a Value from its high and low 64-bit halves.
func NewValue(hi, lo uint64) Value {
	return section.NewValue(hi, lo)
}

// HashKey computes the HashedKey for an arbitrary string key using xxHash64,
// the same hash bucket files key their entries by.
func HashKey(key string) HashedKey {
	return hash.ID(key)
}

// Create writes a new bucket file. See bucket.Create.
func Create(path string, entries map[HashedKey][]Value, opts ...bucket.CreateOption) error {
	return bucket.Create(path, entries, opts...)
}

// Open opens an existing bucket file. See bucket.Open.
func Open(path string) (*bucket.Bucket, error) {
	return bucket.Open(path)
}

// Merge unions two bucket files into a new one. See bucket.Merge.
func Merge(path1, path2, outputPath string, opts ...bucket.CreateOption) error {
	return bucket.Merge(path1, path2, outputPath, opts...)
}

// Delete removes a set of values from a bucket file, writing the result to
// outputPath. See bucket.Delete.
func Delete(path, outputPath string, values []Value, opts ...bucket.CreateOption) error {
	return bucket.Delete(path, outputPath, values, opts...)
}
