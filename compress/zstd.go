package compress

import "github.com/arloliu/binstore/format"

// ZstdCodec frames a blob using Zstandard. Its frame format carries its own
// end marker, so unlike S2Codec and NoOpCodec it could in principle be used
// self-delimited the way LZ4 is, but version 0 is hardcoded to LZ4 and this
// codec is only reachable through the version-1 extension, which always
// writes the length prefix regardless of codec.
//
// NewEncoder/NewDecoder are implemented in zstd_pure.go (pure Go,
// klauspost/compress/zstd) and zstd_cgo.go (cgo, valyala/gozstd), selected
// by build tag the same way the rest of this module's caller chooses
// between them.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
