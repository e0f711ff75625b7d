// Package compress implements the codecs available for framing a bucket's
// per-key value-set blobs.
//
// # Codecs
//
//   - LZ4 (pierrec/lz4/v4): the only codec version-0 buckets may use.
//     Frame-based, self-delimiting, no cgo dependency.
//   - None, Zstd, S2: available to version-1 buckets via
//     bucket.WithCompression. None and S2 are not self-delimiting and are
//     always written with codec.WriteBlob's length prefix; Zstd's frame
//     format is self-delimiting but is still length-prefixed in version 1
//     for uniformity.
//
// Zstd has two implementations selected by build tag: zstd_pure.go (the
// default, pure-Go klauspost/compress/zstd) and zstd_cgo.go (gated behind
// the nobuild tag, valyala/gozstd's cgo binding to the reference C
// library), mirroring how the rest of this module keeps a cgo-free default
// build.
package compress
