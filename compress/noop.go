package compress

import (
	"io"

	"github.com/arloliu/binstore/format"
)

// NoOpCodec writes a value-set blob uncompressed. Only usable in version-1
// buckets, where codec.WriteBlob's length prefix makes it possible to
// embed an unframed byte stream back-to-back with the next blob.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that passes bytes through unmodified.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (c NoOpCodec) NewEncoder(w io.Writer) (Encoder, error) {
	return nopEncoder{w}, nil
}

func (c NoOpCodec) NewDecoder(r io.Reader) (io.Reader, error) {
	return r, nil
}

// nopEncoder adapts an io.Writer to Encoder with a no-op Close.
type nopEncoder struct {
	io.Writer
}

func (nopEncoder) Close() error { return nil }
