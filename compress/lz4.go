package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/binstore/format"
)

// LZ4Codec frames a value-set blob as a bare LZ4 frame with no outer length
// prefix. It is the only codec version-0 buckets may use: the LZ4 frame
// format carries its own end-of-stream marker, so lz4.Reader stops exactly
// at the frame boundary even when more data (the next key's blob) follows
// immediately in the same file.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewEncoder returns an lz4.Writer configured at format.CompressionLevel.
// Block checksums are left off: the bucket's own dense index is the source
// of truth for where each blob starts, so per-block integrity framing would
// only add bytes without buying anything a corrupted read wouldn't already
// surface as a decompression error.
func (c LZ4Codec) NewEncoder(w io.Writer) (Encoder, error) {
	lw := lz4.NewWriter(w)
	if err := lw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
		return nil, err
	}

	return lw, nil
}

// NewDecoder returns an lz4.Reader over r. It consumes exactly one frame:
// safe to use directly on a reader positioned at the start of a blob inside
// a larger bucket file, with no length prefix needed.
func (c LZ4Codec) NewDecoder(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}
