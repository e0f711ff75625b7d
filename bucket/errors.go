package bucket

import "errors"

var (
	// ErrBadMagic is returned by Open when a file's header does not start
	// with format.Magic.
	ErrBadMagic = errors.New("bucket: bad magic number")

	// ErrBadVersion is returned by Open when a file's header names a
	// format.Version this build does not know how to read.
	ErrBadVersion = errors.New("bucket: unsupported version")

	// ErrKeyNotFound is returned by Get when the looked-up key has no
	// entry in the bucket.
	ErrKeyNotFound = errors.New("bucket: key not found")

	// ErrClosed names the use of a Bucket after Close. Close does not
	// record that the Bucket is closed, so no operation in this package
	// returns ErrClosed: a read after Close fails with the error *os.File
	// returns for a closed file.
	ErrClosed = errors.New("bucket: use of closed bucket")

	// ErrDecode is returned by Get when the dense index or a value-set
	// blob at the located offset cannot be parsed — a truncated file or a
	// corrupt compressed frame, as opposed to a missing key.
	ErrDecode = errors.New("bucket: malformed data")

	// ErrEmptyValueSet is returned by Create when an entry's value slice
	// is empty. A key with nothing to store should not be in the map at
	// all.
	ErrEmptyValueSet = errors.New("bucket: entry has an empty value set")
)
