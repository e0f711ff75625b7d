package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/binstore/format"
)

// S2Codec frames a blob using Snappy-compatible S2 streaming compression.
// S2's stream format has no reliable end-of-stream marker when one stream
// is immediately followed by another in the same file, so S2Codec is only
// valid in version-1 buckets, where codec.WriteBlob's length prefix bounds
// the reader for it.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

func (c S2Codec) NewEncoder(w io.Writer) (Encoder, error) {
	return s2.NewWriter(w), nil
}

func (c S2Codec) NewDecoder(r io.Reader) (io.Reader, error) {
	return s2.NewReader(r), nil
}
