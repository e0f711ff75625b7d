//go:build nobuild

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewEncoder returns a gozstd.Writer writing to w. gozstd wraps the
// reference zstd C library, trading a cgo dependency for throughput on the
// encode-heavy merge path.
func (c ZstdCodec) NewEncoder(w io.Writer) (Encoder, error) {
	return gozstd.NewWriterLevel(w, 19), nil
}

func (c ZstdCodec) NewDecoder(r io.Reader) (io.Reader, error) {
	return gozstd.NewReader(r), nil
}
