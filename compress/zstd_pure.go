//go:build !nobuild

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewEncoder returns a zstd.Encoder writing to w at the best-compression
// level, matching format.CompressionLevel's bias toward ratio over speed.
func (c ZstdCodec) NewEncoder(w io.Writer) (Encoder, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

// NewDecoder returns a zstd.Decoder reading from r. The decoder is single-
// threaded: a per-blob decoder has nothing to parallelize and concurrency
// would only add goroutine overhead per call.
func (c ZstdCodec) NewDecoder(r io.Reader) (io.Reader, error) {
	return zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
}
